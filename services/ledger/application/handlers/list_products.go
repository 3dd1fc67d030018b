package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// ListProductsHandler handles GET /products requests.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

// NewListProductsHandler returns a ListProductsHandler backed by the given services.
func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute returns the full catalog in insertion order.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products := h.svc.Ledger.ListProducts(r.Context())

	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	httpx.JSON(w, http.StatusOK, out)
}
