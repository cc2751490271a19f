package models

type Report struct {
	Record
	CampaignID    uint    `gorm:"column:campaign_id;not null;index" json:"campaign_id" validate:"required"`
	Title         string  `gorm:"column:title;size:255;not null" json:"title" validate:"required"`
	Content       string  `gorm:"column:content;type:text" json:"content"`
	FundsUtilized float64 `gorm:"column:funds_utilized;type:decimal(14,2);default:0" json:"funds_utilized" validate:"money"`
	ReportDate    Date    `gorm:"column:report_date;not null" json:"report_date" swaggertype:"string" format:"date" example:"2024-01-31" validate:"required"`
}

func (Report) TableName() string {
	return "reports"
}
