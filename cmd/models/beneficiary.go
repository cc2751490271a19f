package models

type Beneficiary struct {
	Record
	Name       string `gorm:"column:name;size:255;not null" json:"name" validate:"required"`
	Contact    string `gorm:"column:contact;size:20" json:"contact"`
	Address    string `gorm:"column:address;type:text" json:"address"`
	Needs      string `gorm:"column:needs;type:text" json:"needs"`
	CampaignID *uint  `gorm:"column:campaign_id;index" json:"campaign_id"`
}

func (Beneficiary) TableName() string {
	return "beneficiaries"
}
