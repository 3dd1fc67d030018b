package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// ListInboundHandler handles GET /inbound requests.
type ListInboundHandler struct {
	svc *appsvcs.Services
}

// NewListInboundHandler returns a ListInboundHandler backed by the given services.
func NewListInboundHandler(svc *appsvcs.Services) *ListInboundHandler {
	return &ListInboundHandler{svc: svc}
}

// Execute returns all inbound records, most recent first.
//
//	@Summary	List inbound records
//	@Tags		transactions
//	@Produce	json
//	@Success	200	{array}	InboundRecordResponse
//	@Router		/inbound [get]
func (h *ListInboundHandler) Execute(w http.ResponseWriter, r *http.Request) {
	records := h.svc.Ledger.ListInbound(r.Context())

	out := make([]InboundRecordResponse, len(records))
	for i, rec := range records {
		out[i] = toInboundResponse(rec)
	}
	httpx.JSON(w, http.StatusOK, out)
}
