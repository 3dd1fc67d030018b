package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// ListOutboundHandler handles GET /outbound requests.
type ListOutboundHandler struct {
	svc *appsvcs.Services
}

// NewListOutboundHandler returns a ListOutboundHandler backed by the given services.
func NewListOutboundHandler(svc *appsvcs.Services) *ListOutboundHandler {
	return &ListOutboundHandler{svc: svc}
}

// Execute returns all outbound records, most recent first.
//
//	@Summary	List outbound records
//	@Tags		transactions
//	@Produce	json
//	@Success	200	{array}	OutboundRecordResponse
//	@Router		/outbound [get]
func (h *ListOutboundHandler) Execute(w http.ResponseWriter, r *http.Request) {
	records := h.svc.Ledger.ListOutbound(r.Context())

	out := make([]OutboundRecordResponse, len(records))
	for i, rec := range records {
		out[i] = toOutboundResponse(rec)
	}
	httpx.JSON(w, http.StatusOK, out)
}
