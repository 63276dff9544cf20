package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"agency-desk/internal/core/port"
)

const ledgerSheet = "Ledger"

var ledgerHeader = []any{"Outlet Code", "Shop Name", "Campaign Name", "TCA", "Paid", "Pending", "Installments"}

// WriteLedger writes export rows as a single-sheet workbook.
func WriteLedger(w io.Writer, rows []port.LedgerExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ledgerSheet); err != nil {
		return err
	}
	if err := writeHeader(f, ledgerSheet, ledgerHeader); err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		allocated, _ := r.Allocated.Float64()
		paid, _ := r.Paid.Float64()
		pending, _ := r.Pending.Float64()
		values := []any{r.OutletCode, r.ShopName, r.CampaignName, allocated, paid, pending, r.Installments}
		if err = f.SetSheetRow(ledgerSheet, cell, &values); err != nil {
			return fmt.Errorf("ledger row %d: %w", i+2, err)
		}
	}
	if len(rows) > 0 {
		if err = f.SetCellStyle(ledgerSheet, "D2", fmt.Sprintf("F%d", len(rows)+1), money); err != nil {
			return err
		}
	}
	if err = f.SetColWidth(ledgerSheet, "A", "G", 18); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}

// WriteAllocationTemplate writes an empty TCA upload sheet.
func WriteAllocationTemplate(w io.Writer) error {
	return writeTemplate(w, []any{"Outlet Code", "Campaign Name", "TCA"})
}

// WriteInstallmentTemplate writes an empty installment upload sheet.
func WriteInstallmentTemplate(w io.Writer) error {
	return writeTemplate(w, []any{"Outlet Code", "Campaign Name", "Amount", "UTR", "Date", "Remarks"})
}

func writeTemplate(w io.Writer, header []any) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := writeHeader(f, "Sheet1", header); err != nil {
		return err
	}
	_, err := f.WriteTo(w)
	return err
}

func writeHeader(f *excelize.File, sheet string, header []any) error {
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, bold)
}
