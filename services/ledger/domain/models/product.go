package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMinStock is the low-stock threshold applied when a product is
// created without one.
const DefaultMinStock = 10

// Product is the catalog aggregate tracked by the ledger.
//
// Stock is a derived quantity: it is mutated only by inbound/outbound
// transaction operations and always equals the sum of inbound quantities
// minus the sum of outbound quantities recorded since creation. Product
// updates never touch it.
//
// JSON tags define the durable snapshot format and must not change.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Unit      string    `json:"unit"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	MinStock  int       `json:"min_stock"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProduct constructs a Product with a generated ID, zero stock, and the
// current UTC timestamp. Field validation is the caller's responsibility
// (see services.ValidateProductFields).
func NewProduct(name, category, unit string, price float64, minStock int) *Product {
	return &Product{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Unit:      unit,
		Price:     price,
		Stock:     0,
		MinStock:  minStock,
		CreatedAt: time.Now().UTC(),
	}
}

// LowStock reports whether the product's stock is below its threshold.
func (p *Product) LowStock() bool {
	return p.Stock < p.MinStock
}

// Value returns the product's contribution to total inventory value.
func (p *Product) Value() float64 {
	return float64(p.Stock) * p.Price
}
