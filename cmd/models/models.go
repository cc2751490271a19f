package models

import "time"

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Campaign{},
		&Beneficiary{},
		&Donation{},
		&Report{},
		&Milestone{},
	}
}

// Record holds the store-assigned columns shared by every model.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reset clears values a client may have sent for store-assigned columns.
func (r *Record) Reset() {
	*r = Record{}
}
