package handlers_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/services/export/application/handlers"
	"github.com/ghuser/stockroom/services/export/excel"
	ledgersvcs "github.com/ghuser/stockroom/services/ledger/application/services"
	"github.com/ghuser/stockroom/services/ledger/infrastructure/persistence/jsonfile"
)

func newLedger(t *testing.T) *ledgersvcs.Ledger {
	t.Helper()
	log := logger.New(&config.Config{LogLevel: "error"})
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "warehouse.json"), log)
	led, err := ledgersvcs.NewLedger(store, nil, log)
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	return led
}

func TestGetExport(t *testing.T) {
	led := newLedger(t)
	ctx := context.Background()

	p, err := led.CreateProduct(ctx, ledgersvcs.CreateProductParams{
		Name: "Widget", Category: "Hardware", Unit: "pcs", Price: 9.5,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if _, err := led.RecordInbound(ctx, ledgersvcs.RecordInboundParams{
		ProductID: p.ID, Quantity: 50, Supplier: "Acme Corp", Operator: "alice",
	}); err != nil {
		t.Fatalf("inbound: %v", err)
	}

	log := logger.New(&config.Config{LogLevel: "error"})
	h := handlers.NewGetExportHandler(led, log)

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()
	h.Execute(rec, req)

	resp := rec.Result()
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") || !strings.Contains(cd, ".xlsx") {
		t.Errorf("unexpected content disposition %q", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("response is not a readable workbook: %v", err)
	}
	defer f.Close() //nolint:errcheck

	name, err := f.GetCellValue(excel.SheetProducts, "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if name != "Widget" {
		t.Errorf("expected Widget in products sheet, got %q", name)
	}
	supplier, _ := f.GetCellValue(excel.SheetInbound, "E2")
	if supplier != "Acme Corp" {
		t.Errorf("expected supplier in inbound sheet, got %q", supplier)
	}
}
