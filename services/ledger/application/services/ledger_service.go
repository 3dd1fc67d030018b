package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	pkgevents "github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	ledgerdomain "github.com/ghuser/stockroom/services/ledger/domain"
	domainevents "github.com/ghuser/stockroom/services/ledger/domain/events"
	"github.com/ghuser/stockroom/services/ledger/domain/models"
	domainsvcs "github.com/ghuser/stockroom/services/ledger/domain/services"
	"github.com/ghuser/stockroom/services/ledger/infrastructure/persistence/jsonfile"
)

// Ledger owns the authoritative in-memory aggregate of products and
// transaction records and enforces the stock invariants on every mutation.
//
// All operations serialize on one mutex: "read stock → decide → mutate →
// persist" is a single critical section, so two concurrent outbound calls can
// never both pass the sufficiency check against a stale value. Reads take the
// mutex briefly to copy state out, so readers always observe a consistent
// aggregate, never a torn one.
//
// Every mutation synchronously rewrites the whole durable snapshot before the
// operation reports success. If that write fails the in-memory change has
// already applied; the error is surfaced as ErrPersistence so callers know
// memory and disk have diverged.
type Ledger struct {
	mu    sync.Mutex
	state *models.Snapshot
	store *jsonfile.Store
	bus   *pkgevents.EventBus
	log   logger.Logger
	ops   metric.Int64Counter
}

// NewLedger loads the last snapshot (or starts empty) and returns a ready
// Ledger. bus may be nil; events are then skipped.
func NewLedger(store *jsonfile.Store, bus *pkgevents.EventBus, log logger.Logger) (*Ledger, error) {
	meter := otel.Meter("stockroom/ledger")
	ops, err := meter.Int64Counter("ledger.operations",
		metric.WithDescription("Completed ledger operations by name and outcome"))
	if err != nil {
		return nil, fmt.Errorf("create operations counter: %w", err)
	}

	return &Ledger{
		state: store.Load(),
		store: store,
		bus:   bus,
		log:   log,
		ops:   ops,
	}, nil
}

// CreateProductParams carries the validated input for CreateProduct.
// MinStock nil means "not provided"; the default threshold applies.
type CreateProductParams struct {
	Name     string
	Category string
	Unit     string
	Price    float64
	MinStock *int
}

// UpdateProductParams carries the full replacement set of editable fields.
// Stock is deliberately absent: it is transaction-derived only.
type UpdateProductParams struct {
	Name     string
	Category string
	Unit     string
	Price    float64
	MinStock int
}

// RecordInboundParams carries the input for RecordInbound.
type RecordInboundParams struct {
	ProductID uuid.UUID
	Quantity  int
	Supplier  string
	Operator  string
	Note      string
}

// RecordOutboundParams carries the input for RecordOutbound.
type RecordOutboundParams struct {
	ProductID uuid.UUID
	Quantity  int
	Customer  string
	Operator  string
	Note      string
}

// Stats is the aggregate statistics payload, recomputed on every call.
// JSON names match the statistics endpoint contract.
type Stats struct {
	TotalProducts    int     `json:"totalProducts"`
	LowStockProducts int     `json:"lowStockProducts"`
	TotalValue       float64 `json:"totalValue"`
	TodayInbound     int     `json:"todayInbound"`
	TodayOutbound    int     `json:"todayOutbound"`
}

// CreateProduct validates and persists a new product with zero stock.
func (l *Ledger) CreateProduct(ctx context.Context, p CreateProductParams) (*models.Product, error) {
	minStock := models.DefaultMinStock
	if p.MinStock != nil {
		minStock = *p.MinStock
	}
	if err := domainsvcs.ValidateProductFields(p.Name, p.Category, p.Unit, p.Price, minStock); err != nil {
		l.count(ctx, "create_product", err)
		return nil, fmt.Errorf("%w: %w", ledgerdomain.ErrValidation, err)
	}

	product := models.NewProduct(p.Name, p.Category, p.Unit, p.Price, minStock)

	l.mu.Lock()
	l.state.Products = append(l.state.Products, product)
	err := l.persistLocked(ctx)
	if err != nil {
		l.mu.Unlock()
		l.count(ctx, "create_product", err)
		return nil, err
	}
	created := *product
	l.mu.Unlock()

	l.publish(ctx, domainevents.TopicProductCreated, domainevents.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  created.ID,
		Name:       created.Name,
		Category:   created.Category,
		OccurredAt: created.CreatedAt,
	})
	l.count(ctx, "create_product", nil)
	return &created, nil
}

// GetProduct returns a copy of the product or ErrProductNotFound.
func (l *Ledger) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.findLocked(id)
	if p == nil {
		l.count(ctx, "get_product", ledgerdomain.ErrProductNotFound)
		return nil, ledgerdomain.ErrProductNotFound
	}
	cp := *p
	l.count(ctx, "get_product", nil)
	return &cp, nil
}

// ListProducts returns copies of all products in insertion order.
func (l *Ledger) ListProducts(_ context.Context) []*models.Product {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*models.Product, len(l.state.Products))
	for i, p := range l.state.Products {
		cp := *p
		out[i] = &cp
	}
	return out
}

// UpdateProduct replaces all editable fields of the product. Stock and
// CreatedAt are untouched. Fields are validated exactly like CreateProduct.
func (l *Ledger) UpdateProduct(ctx context.Context, id uuid.UUID, p UpdateProductParams) (*models.Product, error) {
	if err := domainsvcs.ValidateProductFields(p.Name, p.Category, p.Unit, p.Price, p.MinStock); err != nil {
		l.count(ctx, "update_product", err)
		return nil, fmt.Errorf("%w: %w", ledgerdomain.ErrValidation, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	product := l.findLocked(id)
	if product == nil {
		l.count(ctx, "update_product", ledgerdomain.ErrProductNotFound)
		return nil, ledgerdomain.ErrProductNotFound
	}

	product.Name = p.Name
	product.Category = p.Category
	product.Unit = p.Unit
	product.Price = p.Price
	product.MinStock = p.MinStock

	if err := l.persistLocked(ctx); err != nil {
		l.count(ctx, "update_product", err)
		return nil, err
	}
	cp := *product
	l.count(ctx, "update_product", nil)
	return &cp, nil
}

// DeleteProduct removes the product from the catalog. Historical transaction
// records referencing it are kept untouched: their denormalized product_name
// remains the authoritative snapshot of what was moved.
func (l *Ledger) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, p := range l.state.Products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.count(ctx, "delete_product", ledgerdomain.ErrProductNotFound)
		return ledgerdomain.ErrProductNotFound
	}

	l.state.Products = append(l.state.Products[:idx], l.state.Products[idx+1:]...)

	if err := l.persistLocked(ctx); err != nil {
		l.count(ctx, "delete_product", err)
		return err
	}
	l.count(ctx, "delete_product", nil)
	return nil
}

// RecordInbound increments the product's stock and prepends an inbound record.
// Record construction, stock mutation, list insertion, and persistence form
// one critical section; no partial application is observable to readers.
func (l *Ledger) RecordInbound(ctx context.Context, p RecordInboundParams) (*models.InboundRecord, error) {
	qty, err := l.validateMovement(p.Quantity, "supplier", p.Supplier, p.Operator)
	if err != nil {
		l.count(ctx, "record_inbound", err)
		return nil, err
	}

	l.mu.Lock()
	product := l.findLocked(p.ProductID)
	if product == nil {
		l.mu.Unlock()
		l.count(ctx, "record_inbound", ledgerdomain.ErrProductNotFound)
		return nil, ledgerdomain.ErrProductNotFound
	}

	rec := models.NewInboundRecord(product, qty, p.Supplier, p.Operator, p.Note)
	product.Stock += qty.Int()
	l.state.InboundRecords = append([]*models.InboundRecord{rec}, l.state.InboundRecords...)

	if err := l.persistLocked(ctx); err != nil {
		l.mu.Unlock()
		l.count(ctx, "record_inbound", err)
		return nil, err
	}
	created := *rec
	stock, minStock := product.Stock, product.MinStock
	l.mu.Unlock()

	l.publish(ctx, domainevents.TopicInboundRecorded, domainevents.StockMovedEvent{
		EventID:     uuid.New(),
		Version:     1,
		RecordID:    created.ID,
		ProductID:   created.ProductID,
		ProductName: created.ProductName,
		Quantity:    created.Quantity,
		Stock:       stock,
		MinStock:    minStock,
		OccurredAt:  created.CreatedAt,
	})
	l.count(ctx, "record_inbound", nil)
	return &created, nil
}

// RecordOutbound decrements the product's stock and prepends an outbound
// record. If the requested quantity exceeds current stock the operation fails
// with ErrInsufficientStock and mutates nothing.
func (l *Ledger) RecordOutbound(ctx context.Context, p RecordOutboundParams) (*models.OutboundRecord, error) {
	qty, err := l.validateMovement(p.Quantity, "customer", p.Customer, p.Operator)
	if err != nil {
		l.count(ctx, "record_outbound", err)
		return nil, err
	}

	l.mu.Lock()
	product := l.findLocked(p.ProductID)
	if product == nil {
		l.mu.Unlock()
		l.count(ctx, "record_outbound", ledgerdomain.ErrProductNotFound)
		return nil, ledgerdomain.ErrProductNotFound
	}

	if qty.Int() > product.Stock {
		available := product.Stock
		l.mu.Unlock()
		err := fmt.Errorf("%w: requested %d, available %d", ledgerdomain.ErrInsufficientStock, qty.Int(), available)
		l.count(ctx, "record_outbound", err)
		return nil, err
	}

	rec := models.NewOutboundRecord(product, qty, p.Customer, p.Operator, p.Note)
	product.Stock -= qty.Int()
	l.state.OutboundRecords = append([]*models.OutboundRecord{rec}, l.state.OutboundRecords...)

	if err := l.persistLocked(ctx); err != nil {
		l.mu.Unlock()
		l.count(ctx, "record_outbound", err)
		return nil, err
	}
	created := *rec
	stock, minStock := product.Stock, product.MinStock
	l.mu.Unlock()

	l.publish(ctx, domainevents.TopicOutboundRecorded, domainevents.StockMovedEvent{
		EventID:     uuid.New(),
		Version:     1,
		RecordID:    created.ID,
		ProductID:   created.ProductID,
		ProductName: created.ProductName,
		Quantity:    created.Quantity,
		Stock:       stock,
		MinStock:    minStock,
		OccurredAt:  created.CreatedAt,
	})
	l.count(ctx, "record_outbound", nil)
	return &created, nil
}

// ListInbound returns copies of all inbound records, most recent first.
func (l *Ledger) ListInbound(_ context.Context) []*models.InboundRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*models.InboundRecord, len(l.state.InboundRecords))
	for i, r := range l.state.InboundRecords {
		cp := *r
		out[i] = &cp
	}
	return out
}

// ListOutbound returns copies of all outbound records, most recent first.
func (l *Ledger) ListOutbound(_ context.Context) []*models.OutboundRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*models.OutboundRecord, len(l.state.OutboundRecords))
	for i, r := range l.state.OutboundRecords {
		cp := *r
		out[i] = &cp
	}
	return out
}

// Statistics recomputes the aggregate statistics from current state.
// "Today" is the current UTC calendar date, matching the timestamps the
// ledger assigns at record creation.
func (l *Ledger) Statistics(_ context.Context) Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	var stats Stats
	stats.TotalProducts = len(l.state.Products)
	for _, p := range l.state.Products {
		if p.LowStock() {
			stats.LowStockProducts++
		}
		stats.TotalValue += p.Value()
	}

	today := time.Now().UTC().Format(time.DateOnly)
	for _, r := range l.state.InboundRecords {
		if r.CreatedAt.UTC().Format(time.DateOnly) == today {
			stats.TodayInbound++
		}
	}
	for _, r := range l.state.OutboundRecords {
		if r.CreatedAt.UTC().Format(time.DateOnly) == today {
			stats.TodayOutbound++
		}
	}
	return stats
}

// Ping verifies the durable store is reachable. Used by the health endpoint.
func (l *Ledger) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}

// validateMovement checks the shared preconditions of inbound/outbound
// recording: positive quantity, non-empty counterparty and operator.
func (l *Ledger) validateMovement(quantity int, partyField, party, operator string) (models.Quantity, error) {
	qty, err := models.NewQuantity(quantity)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ledgerdomain.ErrValidation, err)
	}
	if err := domainsvcs.ValidateCounterparty(partyField, party); err != nil {
		return 0, fmt.Errorf("%w: %w", ledgerdomain.ErrValidation, err)
	}
	if err := domainsvcs.ValidateCounterparty("operator", operator); err != nil {
		return 0, fmt.Errorf("%w: %w", ledgerdomain.ErrValidation, err)
	}
	return qty, nil
}

// findLocked returns the live product with the given id. Caller holds mu.
func (l *Ledger) findLocked(id uuid.UUID) *models.Product {
	for _, p := range l.state.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// persistLocked rewrites the durable snapshot. Caller holds mu. A failure is
// wrapped as ErrPersistence and logged: the in-memory mutation has already
// applied, so memory and disk have diverged until the next successful write.
func (l *Ledger) persistLocked(ctx context.Context) error {
	if err := l.store.Persist(l.state); err != nil {
		l.log.ErrorContext(ctx, "snapshot persist failed, memory and disk diverged",
			"path", l.store.Path(), "error", err)
		return fmt.Errorf("%w: %w", ledgerdomain.ErrPersistence, err)
	}
	return nil
}

// publish sends a domain event, best-effort. Event delivery failures are
// logged and never fail the operation that triggered them.
func (l *Ledger) publish(ctx context.Context, topic string, payload any) {
	if l.bus == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		l.log.WarnContext(ctx, "event payload marshal failed", "topic", topic, "error", err)
		return
	}
	if err := l.bus.Publish(ctx, topic, message.NewMessage(uuid.NewString(), body)); err != nil {
		l.log.WarnContext(ctx, "event publish failed", "topic", topic, "error", err)
	}
}

// count records one completed operation on the metrics counter.
func (l *Ledger) count(ctx context.Context, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	l.ops.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}
