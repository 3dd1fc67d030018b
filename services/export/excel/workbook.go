// Package excel renders the ledger aggregate as an Excel workbook.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ghuser/stockroom/services/ledger/domain/models"
)

const (
	SheetProducts = "Products"
	SheetInbound  = "Inbound"
	SheetOutbound = "Outbound"

	timeLayout = "2006-01-02 15:04:05"
)

// BuildWorkbook renders the catalog and both transaction journals into a
// three-sheet workbook. Rows appear in the order given, so the journals keep
// their most-recent-first ordering.
func BuildWorkbook(products []*models.Product, inbound []*models.InboundRecord, outbound []*models.OutboundRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetProducts); err != nil {
		return nil, fmt.Errorf("rename products sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetInbound); err != nil {
		return nil, fmt.Errorf("create inbound sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetOutbound); err != nil {
		return nil, fmt.Errorf("create outbound sheet: %w", err)
	}

	if err := writeProducts(f, products); err != nil {
		return nil, err
	}
	if err := writeInbound(f, inbound); err != nil {
		return nil, err
	}
	if err := writeOutbound(f, outbound); err != nil {
		return nil, err
	}

	idx, err := f.GetSheetIndex(SheetProducts)
	if err != nil {
		return nil, fmt.Errorf("find products sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	return f, nil
}

func writeProducts(f *excelize.File, products []*models.Product) error {
	header := []any{"ID", "Name", "Category", "Unit", "Price", "Stock", "Min Stock", "Created At"}
	if err := f.SetSheetRow(SheetProducts, "A1", &header); err != nil {
		return fmt.Errorf("write products header: %w", err)
	}
	for i, p := range products {
		row := []any{
			p.ID.String(), p.Name, p.Category, p.Unit,
			p.Price, p.Stock, p.MinStock, p.CreatedAt.Format(timeLayout),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetProducts, cell, &row); err != nil {
			return fmt.Errorf("write product row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeInbound(f *excelize.File, records []*models.InboundRecord) error {
	header := []any{"ID", "Product ID", "Product Name", "Quantity", "Supplier", "Operator", "Note", "Created At"}
	if err := f.SetSheetRow(SheetInbound, "A1", &header); err != nil {
		return fmt.Errorf("write inbound header: %w", err)
	}
	for i, r := range records {
		row := []any{
			r.ID.String(), r.ProductID.String(), r.ProductName,
			r.Quantity, r.Supplier, r.Operator, r.Note, r.CreatedAt.Format(timeLayout),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetInbound, cell, &row); err != nil {
			return fmt.Errorf("write inbound row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeOutbound(f *excelize.File, records []*models.OutboundRecord) error {
	header := []any{"ID", "Product ID", "Product Name", "Quantity", "Customer", "Operator", "Note", "Created At"}
	if err := f.SetSheetRow(SheetOutbound, "A1", &header); err != nil {
		return fmt.Errorf("write outbound header: %w", err)
	}
	for i, r := range records {
		row := []any{
			r.ID.String(), r.ProductID.String(), r.ProductName,
			r.Quantity, r.Customer, r.Operator, r.Note, r.CreatedAt.Format(timeLayout),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetOutbound, cell, &row); err != nil {
			return fmt.Errorf("write outbound row %d: %w", i+2, err)
		}
	}
	return nil
}
