package models

// User holds the bcrypt hash in Password once stored. It is never written
// to a response directly; see schema.ShowUser.
type User struct {
	Record
	Name     string `gorm:"column:name;size:255;not null" json:"name" validate:"required"`
	Email    string `gorm:"column:email;size:255;not null;uniqueIndex" json:"email" validate:"required"`
	Password string `gorm:"column:password;size:255;not null" json:"password" validate:"required"`
	Contact  string `gorm:"column:contact;size:20;not null;uniqueIndex" json:"contact" validate:"required"`
	Role     string `gorm:"column:role;size:50;not null" json:"role" validate:"required"`
}

func (User) TableName() string {
	return "users"
}
