package models

// Donation records money given by a user to a campaign. Only the user
// reference is checked when a donation is created.
type Donation struct {
	Record
	Amount        float64 `gorm:"column:amount;type:decimal(14,2);not null" json:"amount" validate:"required,money"`
	DonationDate  Date    `gorm:"column:donation_date;not null" json:"donation_date" swaggertype:"string" format:"date" example:"2024-01-31" validate:"required"`
	TransactionID string  `gorm:"column:transaction_id;size:255;not null" json:"transaction_id" validate:"required"`
	CampaignID    uint    `gorm:"column:campaign_id;not null;index" json:"campaign_id" validate:"required"`
	UserID        uint    `gorm:"column:user_id;not null;index" json:"user_id" validate:"required"`
}

func (Donation) TableName() string {
	return "donations"
}
