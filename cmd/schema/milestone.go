package schema

import "github.com/KAsare1/donation-server/cmd/models"

type MilestoneUpdate struct {
	CampaignID   Optional[uint]        `json:"campaign_id"`
	Title        Optional[string]      `json:"title"`
	Description  Optional[string]      `json:"description"`
	TargetAmount Optional[float64]     `json:"target_amount"`
	Achieved     Optional[bool]        `json:"achieved"`
	DueDate      Optional[models.Date] `json:"due_date"`
}

func (p MilestoneUpdate) Validate() error {
	return fieldErrors(
		nullFields(map[string]interface{ IsNull() bool }{
			"campaign_id":   p.CampaignID,
			"title":         p.Title,
			"description":   p.Description,
			"target_amount": p.TargetAmount,
			"achieved":      p.Achieved,
			"due_date":      p.DueDate,
		}),
		moneyFields(map[string]Optional[float64]{"target_amount": p.TargetAmount}),
	)
}

func (p MilestoneUpdate) Changes() Changes {
	c := Changes{}
	Put(c, "campaign_id", p.CampaignID)
	Put(c, "title", p.Title)
	Put(c, "description", p.Description)
	Put(c, "target_amount", p.TargetAmount)
	Put(c, "achieved", p.Achieved)
	Put(c, "due_date", p.DueDate)
	return c
}
