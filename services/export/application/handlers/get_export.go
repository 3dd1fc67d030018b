package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/services/export/excel"
	"github.com/ghuser/stockroom/services/ledger/domain/models"
)

// LedgerReader is the read-only view of the ledger the export needs.
// Satisfied by the ledger application service.
type LedgerReader interface {
	ListProducts(ctx context.Context) []*models.Product
	ListInbound(ctx context.Context) []*models.InboundRecord
	ListOutbound(ctx context.Context) []*models.OutboundRecord
}

// GetExportHandler handles GET /export requests.
type GetExportHandler struct {
	reader LedgerReader
	log    logger.Logger
}

// NewGetExportHandler returns a GetExportHandler reading from the given ledger.
func NewGetExportHandler(reader LedgerReader, log logger.Logger) *GetExportHandler {
	return &GetExportHandler{reader: reader, log: log}
}

// Execute streams the full ledger as an xlsx workbook download.
//
//	@Summary	Export ledger
//	@Tags		export
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}	binary
//	@Router		/export [get]
func (h *GetExportHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := excel.BuildWorkbook(
		h.reader.ListProducts(ctx),
		h.reader.ListInbound(ctx),
		h.reader.ListOutbound(ctx),
	)
	if err != nil {
		h.log.ErrorContext(ctx, "workbook build failed", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "export failed")
		return
	}
	defer f.Close() //nolint:errcheck

	filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := f.Write(w); err != nil {
		// Headers are already out; nothing left to do but log.
		h.log.ErrorContext(ctx, "workbook write failed", "error", err)
	}
}
