package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/promoclaim-go/internal/api/apierr"
	"github.com/mcoot/promoclaim-go/internal/api/request"
	"github.com/mcoot/promoclaim-go/internal/api/response"
	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/services/claim"
)

// ClaimHandler handles the claim endpoint
type ClaimHandler struct {
	claimService *claim.Service
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService *claim.Service) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// Claim handles POST /api/v1/campaigns/{campaign}/claim
func (h *ClaimHandler) Claim(w http.ResponseWriter, r *http.Request) {
	campaign := model.CampaignID(mux.Vars(r)["campaign"])

	var req request.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	assignment, err := h.claimService.Claim(r.Context(), campaign, req.Identity, model.PrizeType(req.PrizeType))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	// A fresh allocation created a record; a repeat visit did not
	status := http.StatusCreated
	if assignment.Returning {
		status = http.StatusOK
	}
	response.JSON(w, status, response.ClaimFromAssignment(assignment))
}
