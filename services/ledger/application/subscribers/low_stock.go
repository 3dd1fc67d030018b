// Package subscribers wires the ledger's domain event handlers.
package subscribers

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgevents "github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	domainevents "github.com/ghuser/stockroom/services/ledger/domain/events"
)

// RegisterLowStockAlerts subscribes to stock movement events and emits a
// warning whenever a movement leaves a product below its reorder threshold.
// Outbound movements are the usual trigger; inbound is watched too because a
// delivery can still leave a product short.
func RegisterLowStockAlerts(ctx context.Context, bus *pkgevents.EventBus, log logger.Logger) error {
	topics := []string{domainevents.TopicOutboundRecorded, domainevents.TopicInboundRecorded}
	for _, topic := range topics {
		errCh, err := bus.Subscribe(ctx, topic, handleStockMoved(log))
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	log.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleStockMoved returns a handler for stock movement events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
func handleStockMoved(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.StockMovedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if evt.Stock < evt.MinStock {
			log.WarnContext(ctx, "product below reorder threshold",
				"product_id", evt.ProductID,
				"product_name", evt.ProductName,
				"stock", evt.Stock,
				"min_stock", evt.MinStock,
			)
		}
		return nil
	}
}
