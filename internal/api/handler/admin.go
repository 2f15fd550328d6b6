package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/promoclaim-go/internal/api/apierr"
	"github.com/mcoot/promoclaim-go/internal/api/response"
	"github.com/mcoot/promoclaim-go/internal/model"
	"github.com/mcoot/promoclaim-go/internal/services/pool"
	"github.com/mcoot/promoclaim-go/internal/services/report"
)

// AdminHandler handles the read-only admin endpoints
type AdminHandler struct {
	reportService *report.Service
	poolService   *pool.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(reportService *report.Service, poolService *pool.Service) *AdminHandler {
	return &AdminHandler{
		reportService: reportService,
		poolService:   poolService,
	}
}

// Participants handles GET /api/v1/campaigns/{campaign}/admin/participants
func (h *AdminHandler) Participants(w http.ResponseWriter, r *http.Request) {
	campaign := model.CampaignID(mux.Vars(r)["campaign"])

	participants, err := h.reportService.Participants(r.Context(), campaign)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ParticipantListFromModel(participants))
}

// Winner handles GET /api/v1/campaigns/{campaign}/admin/winner
func (h *AdminHandler) Winner(w http.ResponseWriter, r *http.Request) {
	campaign := model.CampaignID(mux.Vars(r)["campaign"])

	winner, err := h.reportService.PickWinner(r.Context(), campaign)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Winner{Winner: response.ParticipantFromModel(winner)})
}

// Stats handles GET /api/v1/campaigns/{campaign}/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	campaign := model.CampaignID(mux.Vars(r)["campaign"])

	stats, err := h.poolService.Stats(r.Context(), campaign)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PoolStatsFromService(stats))
}
