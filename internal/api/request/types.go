package request

// ClaimRequest is the request body for claiming a promo code
type ClaimRequest struct {
	// Identity is the raw social-media handle; normalized server-side
	Identity string `json:"identity"`
	// PrizeType optionally restricts the draw to one sub-pool
	// (e.g. win vs lose outcomes)
	PrizeType string `json:"prize_type,omitempty"`
}
