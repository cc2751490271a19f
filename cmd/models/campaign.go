package models

// Campaign is a fundraising drive started by a user.
type Campaign struct {
	Record
	Title        string  `gorm:"column:title;size:255;not null" json:"title" validate:"required"`
	Cause        string  `gorm:"column:cause;type:text;not null" json:"cause" validate:"required"`
	TargetAmount float64 `gorm:"column:target_amount;type:decimal(14,2);not null" json:"target_amount" validate:"required,money"`
	RaisedAmount float64 `gorm:"column:raised_amount;type:decimal(14,2);not null;default:0" json:"raised_amount" validate:"money"`
	StartDate    Date    `gorm:"column:start_date;not null" json:"start_date" swaggertype:"string" format:"date" example:"2024-01-31" validate:"required"`
	EndDate      Date    `gorm:"column:end_date;not null" json:"end_date" swaggertype:"string" format:"date" example:"2024-01-31" validate:"required"`
	CreatorID    uint    `gorm:"column:creator_id;not null;index" json:"creator_id" validate:"required"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
