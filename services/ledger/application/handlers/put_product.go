package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
)

// UpdateProductRequest is the request body for PUT /products/{id}. All
// editable fields are required: the update is a full replacement, validated
// exactly like creation. Stock is not editable, it only moves via
// inbound/outbound transactions.
type UpdateProductRequest struct {
	Name     string   `json:"name"      validate:"required"       example:"Widget v2"`
	Category string   `json:"category"  validate:"required"       example:"Tools"`
	Unit     string   `json:"unit"      validate:"required"       example:"box"`
	Price    *float64 `json:"price"     validate:"required,gte=0" example:"12.0"`
	MinStock *int     `json:"min_stock" validate:"required,gte=0" example:"5"`
} // @name UpdateProductRequest

// PutProductHandler handles PUT /products/{id} requests.
type PutProductHandler struct {
	svc *appsvcs.Services
}

// NewPutProductHandler returns a PutProductHandler backed by the given services.
func NewPutProductHandler(svc *appsvcs.Services) *PutProductHandler {
	return &PutProductHandler{svc: svc}
}

// Execute replaces the editable fields of a product.
//
//	@Summary	Update product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Product id"
//	@Param		request	body		UpdateProductRequest	true	"Product update request"
//	@Success	200		{object}	SuccessResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (h *PutProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, ledgerdomain.ErrProductNotFound)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProductRequest](w, r)
	if !ok {
		return
	}

	if _, err := h.svc.Ledger.UpdateProduct(r.Context(), id, appsvcs.UpdateProductParams{
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Price:    *req.Price,
		MinStock: *req.MinStock,
	}); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, SuccessResponse{Success: true})
}
