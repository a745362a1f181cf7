package controllers

import (
	"net/http"
	"time"

	"github.com/acmelabs/storefront-api/api/responses"
	statsvc "github.com/acmelabs/storefront-api/internal/stats"
	pkgerrors "github.com/acmelabs/storefront-api/pkg/errors"
	"github.com/acmelabs/storefront-api/pkg/logger"
)

type statsResponse struct {
	Success   bool              `json:"success"`
	Data      *statsvc.Overview `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
}

// Stats handles GET /api/stats. Any aggregation failure, including the
// system-metrics probe, becomes a 500 envelope with diagnostic detail.
func Stats(svc statsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Error generating stats"))
			return
		}
		responses.WriteJSON(w, http.StatusOK, statsResponse{
			Success:   true,
			Data:      overview,
			Timestamp: time.Now(),
		})
	}
}
