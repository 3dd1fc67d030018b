package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// CreateProductRequest is the request body for POST /products.
// MinStock is optional; when omitted the default threshold applies, and an
// explicit zero is honored as-is.
type CreateProductRequest struct {
	Name     string   `json:"name"      validate:"required"                example:"Widget"`
	Category string   `json:"category"  validate:"required"                example:"Hardware"`
	Unit     string   `json:"unit"      validate:"required"                example:"pcs"`
	Price    *float64 `json:"price"     validate:"required,gte=0"          example:"9.5"`
	MinStock *int     `json:"min_stock" validate:"omitempty,gte=0"         example:"10"`
} // @name CreateProductRequest

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new catalog product with zero stock.
//
//	@Summary		Create product
//	@Description	Registers a new product in the catalog; stock starts at zero
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Ledger.CreateProduct(r.Context(), appsvcs.CreateProductParams{
		Name:     req.Name,
		Category: req.Category,
		Unit:     req.Unit,
		Price:    *req.Price,
		MinStock: req.MinStock,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
