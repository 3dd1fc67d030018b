package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/ledger/domain/models"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name ErrorResponse

// SuccessResponse acknowledges an operation that returns no entity.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
} // @name SuccessResponse

// RecordCreatedResponse acknowledges a recorded stock movement.
type RecordCreatedResponse struct {
	ID      uuid.UUID `json:"id"      example:"123e4567-e89b-12d3-a456-426614174000"`
	Success bool      `json:"success" example:"true"`
} // @name RecordCreatedResponse

// ProductResponse is the wire representation of a catalog product.
type ProductResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"       example:"Widget"`
	Category  string    `json:"category"   example:"Hardware"`
	Unit      string    `json:"unit"       example:"pcs"`
	Price     float64   `json:"price"      example:"9.5"`
	Stock     int       `json:"stock"      example:"20"`
	MinStock  int       `json:"min_stock"  example:"10"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Unit:      p.Unit,
		Price:     p.Price,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		CreatedAt: p.CreatedAt,
	}
}

// InboundRecordResponse is the wire representation of an inbound record.
type InboundRecordResponse struct {
	ID          uuid.UUID `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	ProductID   uuid.UUID `json:"product_id"   example:"550e8400-e29b-41d4-a716-446655440000"`
	ProductName string    `json:"product_name" example:"Widget"`
	Quantity    int       `json:"quantity"     example:"50"`
	Supplier    string    `json:"supplier"     example:"Acme Corp"`
	Operator    string    `json:"operator"     example:"alice"`
	Note        string    `json:"note"         example:"first delivery"`
	CreatedAt   time.Time `json:"created_at"   example:"2024-01-15T10:30:00Z"`
} // @name InboundRecordResponse

func toInboundResponse(r *models.InboundRecord) InboundRecordResponse {
	return InboundRecordResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Supplier:    r.Supplier,
		Operator:    r.Operator,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
	}
}

// OutboundRecordResponse is the wire representation of an outbound record.
type OutboundRecordResponse struct {
	ID          uuid.UUID `json:"id"           example:"123e4567-e89b-12d3-a456-426614174000"`
	ProductID   uuid.UUID `json:"product_id"   example:"550e8400-e29b-41d4-a716-446655440000"`
	ProductName string    `json:"product_name" example:"Widget"`
	Quantity    int       `json:"quantity"     example:"30"`
	Customer    string    `json:"customer"     example:"Bob's Shop"`
	Operator    string    `json:"operator"     example:"alice"`
	Note        string    `json:"note"         example:""`
	CreatedAt   time.Time `json:"created_at"   example:"2024-01-15T10:30:00Z"`
} // @name OutboundRecordResponse

func toOutboundResponse(r *models.OutboundRecord) OutboundRecordResponse {
	return OutboundRecordResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		Customer:    r.Customer,
		Operator:    r.Operator,
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
	}
}
