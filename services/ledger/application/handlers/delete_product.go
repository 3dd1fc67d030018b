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

// DeleteProductHandler handles DELETE /products/{id} requests.
type DeleteProductHandler struct {
	svc *appsvcs.Services
}

// NewDeleteProductHandler returns a DeleteProductHandler backed by the given services.
func NewDeleteProductHandler(svc *appsvcs.Services) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc}
}

// Execute removes a product from the catalog. Historical transaction records
// are kept; they carry their own snapshot of the product name.
//
//	@Summary	Delete product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Product id"
//	@Success	200	{object}	SuccessResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, ledgerdomain.ErrProductNotFound)
		return
	}

	if err := h.svc.Ledger.DeleteProduct(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SuccessResponse{Success: true})
}
