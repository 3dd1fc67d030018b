package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// CreateInboundRequest is the request body for POST /inbound.
type CreateInboundRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"  example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"   example:"50"`
	Supplier  string `json:"supplier"   validate:"required"        example:"Acme Corp"`
	Operator  string `json:"operator"   validate:"required"        example:"alice"`
	Note      string `json:"note"       validate:"omitempty"       example:"first delivery"`
} // @name CreateInboundRequest

// PostInboundHandler handles POST /inbound requests.
type PostInboundHandler struct {
	svc *appsvcs.Services
}

// NewPostInboundHandler returns a PostInboundHandler backed by the given services.
func NewPostInboundHandler(svc *appsvcs.Services) *PostInboundHandler {
	return &PostInboundHandler{svc: svc}
}

// Execute records an inbound delivery and increments the product's stock.
//
//	@Summary		Record inbound
//	@Description	Records a delivery; the product's stock grows by the quantity
//	@Tags			transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateInboundRequest	true	"Inbound record request"
//	@Success		200		{object}	RecordCreatedResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/inbound [post]
func (h *PostInboundHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateInboundRequest](w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Ledger.RecordInbound(r.Context(), appsvcs.RecordInboundParams{
		ProductID: uuid.MustParse(req.ProductID),
		Quantity:  req.Quantity,
		Supplier:  req.Supplier,
		Operator:  req.Operator,
		Note:      req.Note,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, RecordCreatedResponse{ID: rec.ID, Success: true})
}
