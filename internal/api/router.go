package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/promoclaim-go/internal/api/handler"
	"github.com/mcoot/promoclaim-go/internal/api/middleware"
	appmiddleware "github.com/mcoot/promoclaim-go/internal/middleware"
	"github.com/mcoot/promoclaim-go/internal/services/adminauth"
	"github.com/mcoot/promoclaim-go/internal/services/claim"
	"github.com/mcoot/promoclaim-go/internal/services/pool"
	"github.com/mcoot/promoclaim-go/internal/services/report"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	ClaimService  *claim.Service
	PoolService   *pool.Service
	ReportService *report.Service
	AdminAuth     *adminauth.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	claimHandler := handler.NewClaimHandler(cfg.ClaimService)
	adminHandler := handler.NewAdminHandler(cfg.ReportService, cfg.PoolService)

	// Create middleware
	adminAuthMiddleware := middleware.AdminAuth(cfg.AdminAuth)
	loggingMiddleware := appmiddleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Claim route (public: the games call it directly)
	api.HandleFunc("/campaigns/{campaign}/claim", claimHandler.Claim).Methods(http.MethodPost)

	// Admin routes (shared-secret auth)
	admin := api.PathPrefix("/campaigns/{campaign}/admin").Subrouter()
	admin.Use(adminAuthMiddleware)
	admin.HandleFunc("/participants", adminHandler.Participants).Methods(http.MethodGet)
	admin.HandleFunc("/winner", adminHandler.Winner).Methods(http.MethodGet)
	admin.HandleFunc("/stats", adminHandler.Stats).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
