package controllers

import (
	"net/http"
	"time"

	"github.com/acmelabs/storefront-api/api/responses"
	"github.com/acmelabs/storefront-api/pkg/config"
	"github.com/acmelabs/storefront-api/pkg/logger"
	"github.com/acmelabs/storefront-api/pkg/sysinfo"
)

type healthResponse struct {
	Status      string           `json:"status"`
	Service     string           `json:"service"`
	Version     string           `json:"version"`
	Environment string           `json:"environment"`
	Timestamp   time.Time        `json:"timestamp"`
	System      sysinfo.Snapshot `json:"system"`
}

type unhealthyResponse struct {
	Status    string    `json:"status"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /health. A failing system-metrics probe reports
// unhealthy with a 500 instead of surfacing a fault.
func Health(cfg *config.Config, provider sysinfo.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := provider.Snapshot(r.Context())
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "health.probe_failed", err)
			}
			responses.WriteJSON(w, http.StatusInternalServerError, unhealthyResponse{
				Status:    "unhealthy",
				Error:     err.Error(),
				Timestamp: time.Now(),
			})
			return
		}

		responses.WriteJSON(w, http.StatusOK, healthResponse{
			Status:      "healthy",
			Service:     cfg.Service.Name,
			Version:     cfg.Service.Version,
			Environment: cfg.App.Env,
			Timestamp:   time.Now(),
			System:      snap,
		})
	}
}
