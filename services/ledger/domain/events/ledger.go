package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published by the ledger. Subscribe via EventBus.Subscribe.
const (
	TopicProductCreated   = "ledger.product.created"
	TopicInboundRecorded  = "ledger.inbound.recorded"
	TopicOutboundRecorded = "ledger.outbound.recorded"
)

// ProductCreatedEvent is published after a new Product is persisted.
type ProductCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StockMovedEvent is published after an inbound or outbound record is
// persisted (topic tells the direction). Stock and MinStock carry the
// post-transaction values so subscribers can alert on low stock without
// querying the ledger.
type StockMovedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	RecordID    uuid.UUID `json:"record_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	OccurredAt  time.Time `json:"occurred_at"`
}
