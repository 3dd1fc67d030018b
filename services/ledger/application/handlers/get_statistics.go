package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// GetStatisticsHandler handles GET /statistics requests.
type GetStatisticsHandler struct {
	svc *appsvcs.Services
}

// NewGetStatisticsHandler returns a GetStatisticsHandler backed by the given services.
func NewGetStatisticsHandler(svc *appsvcs.Services) *GetStatisticsHandler {
	return &GetStatisticsHandler{svc: svc}
}

// Execute returns aggregate dashboard statistics, recomputed on every call.
//
//	@Summary	Dashboard statistics
//	@Tags		statistics
//	@Produce	json
//	@Success	200	{object}	services.Stats
//	@Router		/statistics [get]
func (h *GetStatisticsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Ledger.Statistics(r.Context()))
}
