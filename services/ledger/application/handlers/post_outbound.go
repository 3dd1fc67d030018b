package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/ledger/application/services"
)

// CreateOutboundRequest is the request body for POST /outbound.
type CreateOutboundRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4" example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"  example:"30"`
	Customer  string `json:"customer"   validate:"required"       example:"Bob's Shop"`
	Operator  string `json:"operator"   validate:"required"       example:"alice"`
	Note      string `json:"note"       validate:"omitempty"      example:""`
} // @name CreateOutboundRequest

// PostOutboundHandler handles POST /outbound requests.
type PostOutboundHandler struct {
	svc *appsvcs.Services
}

// NewPostOutboundHandler returns a PostOutboundHandler backed by the given services.
func NewPostOutboundHandler(svc *appsvcs.Services) *PostOutboundHandler {
	return &PostOutboundHandler{svc: svc}
}

// Execute records an outbound shipment and decrements the product's stock.
// A quantity exceeding the current stock is rejected outright.
//
//	@Summary		Record outbound
//	@Description	Records a shipment; rejected if quantity exceeds current stock
//	@Tags			transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOutboundRequest	true	"Outbound record request"
//	@Success		200		{object}	RecordCreatedResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/outbound [post]
func (h *PostOutboundHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOutboundRequest](w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Ledger.RecordOutbound(r.Context(), appsvcs.RecordOutboundParams{
		ProductID: uuid.MustParse(req.ProductID),
		Quantity:  req.Quantity,
		Customer:  req.Customer,
		Operator:  req.Operator,
		Note:      req.Note,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, RecordCreatedResponse{ID: rec.ID, Success: true})
}
