package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/services/export/application/handlers"
)

// ExportRoutes registers the workbook download endpoint on the provided chi
// router.
func ExportRoutes(r chi.Router, reader handlers.LedgerReader, log logger.Logger) {
	r.Group(func(r chi.Router) {
		r.Get("/export", handlers.NewGetExportHandler(reader, log).Execute)
	})
}
