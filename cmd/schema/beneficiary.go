package schema

// BeneficiaryUpdate accepts null for campaign_id to detach a beneficiary.
type BeneficiaryUpdate struct {
	Name       Optional[string] `json:"name"`
	Contact    Optional[string] `json:"contact"`
	Address    Optional[string] `json:"address"`
	Needs      Optional[string] `json:"needs"`
	CampaignID Optional[uint]   `json:"campaign_id"`
}

func (p BeneficiaryUpdate) Validate() error {
	return rejectNull(map[string]interface{ IsNull() bool }{
		"name":    p.Name,
		"contact": p.Contact,
		"address": p.Address,
		"needs":   p.Needs,
	})
}

func (p BeneficiaryUpdate) Changes() Changes {
	c := Changes{}
	Put(c, "name", p.Name)
	Put(c, "contact", p.Contact)
	Put(c, "address", p.Address)
	Put(c, "needs", p.Needs)
	Put(c, "campaign_id", p.CampaignID)
	return c
}
