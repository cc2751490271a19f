package models

type Milestone struct {
	Record
	CampaignID   uint    `gorm:"column:campaign_id;not null;index" json:"campaign_id" validate:"required"`
	Title        string  `gorm:"column:title;size:255;not null" json:"title" validate:"required"`
	Description  string  `gorm:"column:description;type:text" json:"description"`
	TargetAmount float64 `gorm:"column:target_amount;type:decimal(14,2);not null" json:"target_amount" validate:"required,money"`
	Achieved     bool    `gorm:"column:achieved;default:false" json:"achieved"`
	DueDate      Date    `gorm:"column:due_date;not null" json:"due_date" swaggertype:"string" format:"date" example:"2024-01-31" validate:"required"`
}

func (Milestone) TableName() string {
	return "milestones"
}
