package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
)

// GetProductHandler handles GET /products/{id} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute returns a single product by id.
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Product id"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id cannot name any product.
		errhttp.WriteError(w, ledgerdomain.ErrProductNotFound)
		return
	}

	product, err := h.svc.Ledger.GetProduct(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
