package schema

import "github.com/KAsare1/donation-server/cmd/models"

type DonationUpdate struct {
	Amount        Optional[float64]     `json:"amount"`
	DonationDate  Optional[models.Date] `json:"donation_date"`
	TransactionID Optional[string]      `json:"transaction_id"`
	CampaignID    Optional[uint]        `json:"campaign_id"`
	UserID        Optional[uint]        `json:"user_id"`
}

func (p DonationUpdate) Validate() error {
	return fieldErrors(
		nullFields(map[string]interface{ IsNull() bool }{
			"amount":         p.Amount,
			"donation_date":  p.DonationDate,
			"transaction_id": p.TransactionID,
			"campaign_id":    p.CampaignID,
			"user_id":        p.UserID,
		}),
		moneyFields(map[string]Optional[float64]{"amount": p.Amount}),
	)
}

func (p DonationUpdate) Changes() Changes {
	c := Changes{}
	Put(c, "amount", p.Amount)
	Put(c, "donation_date", p.DonationDate)
	Put(c, "transaction_id", p.TransactionID)
	Put(c, "campaign_id", p.CampaignID)
	Put(c, "user_id", p.UserID)
	return c
}
