package schema

import "github.com/KAsare1/donation-server/cmd/models"

type CampaignUpdate struct {
	Title        Optional[string]      `json:"title"`
	Cause        Optional[string]      `json:"cause"`
	TargetAmount Optional[float64]     `json:"target_amount"`
	RaisedAmount Optional[float64]     `json:"raised_amount"`
	StartDate    Optional[models.Date] `json:"start_date"`
	EndDate      Optional[models.Date] `json:"end_date"`
	CreatorID    Optional[uint]        `json:"creator_id"`
}

func (p CampaignUpdate) Validate() error {
	return fieldErrors(
		nullFields(map[string]interface{ IsNull() bool }{
			"title":         p.Title,
			"cause":         p.Cause,
			"target_amount": p.TargetAmount,
			"raised_amount": p.RaisedAmount,
			"start_date":    p.StartDate,
			"end_date":      p.EndDate,
			"creator_id":    p.CreatorID,
		}),
		moneyFields(map[string]Optional[float64]{"target_amount": p.TargetAmount, "raised_amount": p.RaisedAmount}),
	)
}

func (p CampaignUpdate) Changes() Changes {
	c := Changes{}
	Put(c, "title", p.Title)
	Put(c, "cause", p.Cause)
	Put(c, "target_amount", p.TargetAmount)
	Put(c, "raised_amount", p.RaisedAmount)
	Put(c, "start_date", p.StartDate)
	Put(c, "end_date", p.EndDate)
	Put(c, "creator_id", p.CreatorID)
	return c
}
