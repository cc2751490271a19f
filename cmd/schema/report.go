package schema

import "github.com/KAsare1/donation-server/cmd/models"

type ReportUpdate struct {
	CampaignID    Optional[uint]        `json:"campaign_id"`
	Title         Optional[string]      `json:"title"`
	Content       Optional[string]      `json:"content"`
	FundsUtilized Optional[float64]     `json:"funds_utilized"`
	ReportDate    Optional[models.Date] `json:"report_date"`
}

func (p ReportUpdate) Validate() error {
	return fieldErrors(
		nullFields(map[string]interface{ IsNull() bool }{
			"campaign_id":    p.CampaignID,
			"title":          p.Title,
			"content":        p.Content,
			"funds_utilized": p.FundsUtilized,
			"report_date":    p.ReportDate,
		}),
		moneyFields(map[string]Optional[float64]{"funds_utilized": p.FundsUtilized}),
	)
}

func (p ReportUpdate) Changes() Changes {
	c := Changes{}
	Put(c, "campaign_id", p.CampaignID)
	Put(c, "title", p.Title)
	Put(c, "content", p.Content)
	Put(c, "funds_utilized", p.FundsUtilized)
	Put(c, "report_date", p.ReportDate)
	return c
}
