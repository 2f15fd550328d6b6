package model

// CampaignID namespaces participants and codes so that separate
// mini-games draw from independent pools
type CampaignID string

// PrizeType partitions a campaign's code pool into independent sub-pools
// (e.g. win vs lose outcomes). The empty PrizeType matches any selector.
type PrizeType string

// Code is a provisioned promo code. It is created unused by a
// provisioning batch and transitions exactly once to Used with
// AssignedTo set; it is never reused or reverted.
type Code struct {
	Code       string
	Prize      string
	PrizeType  PrizeType
	Used       bool
	AssignedTo Handle
}

// Matches reports whether the code satisfies a prize-type selector
func (c *Code) Matches(selector PrizeType) bool {
	return selector == "" || c.PrizeType == selector
}
