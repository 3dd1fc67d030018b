package models

import (
	"time"

	"github.com/google/uuid"
)

// InboundRecord documents stock received from a supplier. Records are
// immutable after creation; ProductName is a snapshot of the product's name
// at transaction time and is deliberately not updated on later renames.
type InboundRecord struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Supplier    string    `json:"supplier"`
	Operator    string    `json:"operator"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// OutboundRecord documents stock shipped to a customer. Same immutability
// and name-snapshot semantics as InboundRecord.
type OutboundRecord struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Customer    string    `json:"customer"`
	Operator    string    `json:"operator"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewInboundRecord constructs an inbound record against the given product,
// snapshotting its current name.
func NewInboundRecord(p *Product, qty Quantity, supplier, operator, note string) *InboundRecord {
	return &InboundRecord{
		ID:          uuid.New(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty.Int(),
		Supplier:    supplier,
		Operator:    operator,
		Note:        note,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewOutboundRecord constructs an outbound record against the given product,
// snapshotting its current name.
func NewOutboundRecord(p *Product, qty Quantity, customer, operator, note string) *OutboundRecord {
	return &OutboundRecord{
		ID:          uuid.New(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty.Int(),
		Customer:    customer,
		Operator:    operator,
		Note:        note,
		CreatedAt:   time.Now().UTC(),
	}
}
