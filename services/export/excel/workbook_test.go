package excel

import (
	"fmt"
	"testing"

	"github.com/ghuser/stockroom/services/ledger/domain/models"
)

func sampleData() ([]*models.Product, []*models.InboundRecord, []*models.OutboundRecord) {
	p := models.NewProduct("Widget", "Hardware", "pcs", 9.5, 10)
	p.Stock = 20
	qty, _ := models.NewQuantity(50)
	in := models.NewInboundRecord(p, qty, "Acme Corp", "alice", "first delivery")
	outQty, _ := models.NewQuantity(30)
	out := models.NewOutboundRecord(p, outQty, "Bob's Shop", "alice", "")
	return []*models.Product{p}, []*models.InboundRecord{in}, []*models.OutboundRecord{out}
}

func TestBuildWorkbook(t *testing.T) {
	products, inbound, outbound := sampleData()

	f, err := BuildWorkbook(products, inbound, outbound)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close() //nolint:errcheck

	t.Run("has all three sheets", func(t *testing.T) {
		sheets := f.GetSheetList()
		want := map[string]bool{SheetProducts: false, SheetInbound: false, SheetOutbound: false}
		for _, s := range sheets {
			want[s] = true
		}
		for name, found := range want {
			if !found {
				t.Errorf("missing sheet %q", name)
			}
		}
	})

	t.Run("product rows", func(t *testing.T) {
		name, err := f.GetCellValue(SheetProducts, "B2")
		if err != nil {
			t.Fatalf("read cell: %v", err)
		}
		if name != "Widget" {
			t.Errorf("expected Widget in B2, got %q", name)
		}
		stock, _ := f.GetCellValue(SheetProducts, "F2")
		if stock != "20" {
			t.Errorf("expected stock 20 in F2, got %q", stock)
		}
	})

	t.Run("inbound rows", func(t *testing.T) {
		supplier, err := f.GetCellValue(SheetInbound, "E2")
		if err != nil {
			t.Fatalf("read cell: %v", err)
		}
		if supplier != "Acme Corp" {
			t.Errorf("expected supplier in E2, got %q", supplier)
		}
	})

	t.Run("outbound rows", func(t *testing.T) {
		customer, err := f.GetCellValue(SheetOutbound, "E2")
		if err != nil {
			t.Fatalf("read cell: %v", err)
		}
		if customer != "Bob's Shop" {
			t.Errorf("expected customer in E2, got %q", customer)
		}
	})

	t.Run("headers present", func(t *testing.T) {
		h, _ := f.GetCellValue(SheetProducts, "A1")
		if h != "ID" {
			t.Errorf("expected ID header, got %q", h)
		}
	})
}

func TestBuildWorkbook_Empty(t *testing.T) {
	f, err := BuildWorkbook(nil, nil, nil)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows(SheetProducts)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
}

func TestBuildWorkbook_JournalOrderPreserved(t *testing.T) {
	p := models.NewProduct("Widget", "Hardware", "pcs", 9.5, 10)
	var inbound []*models.InboundRecord
	for _, supplier := range []string{"newest", "middle", "oldest"} {
		qty, _ := models.NewQuantity(1)
		inbound = append(inbound, models.NewInboundRecord(p, qty, supplier, "alice", ""))
	}

	f, err := BuildWorkbook([]*models.Product{p}, inbound, nil)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}
	defer f.Close() //nolint:errcheck

	for i, want := range []string{"newest", "middle", "oldest"} {
		cell := fmt.Sprintf("E%d", i+2)
		got, _ := f.GetCellValue(SheetInbound, cell)
		if got != want {
			t.Fatalf("row %d: expected %q, got %q", i+2, want, got)
		}
	}
}
