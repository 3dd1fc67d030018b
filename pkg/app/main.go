package app

import (
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service constructors during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "recording inbound", "product_id", id)
//	app.Logger.ErrorContext(ctx, "failed to persist snapshot", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
}
