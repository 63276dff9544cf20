package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf := &bytes.Buffer{}
	_, err := f.WriteTo(buf)
	require.NoError(t, err)
	return buf
}

func TestParseAllocationsCSV(t *testing.T) {
	src := "Campaign Name,Outlet Code,TCA\n" +
		"Summer Cooler,OUT-001,5000\n" +
		",,\n" +
		"Summer Cooler, OUT-002 ,2500.50\n"

	rows, err := ParseAllocations(strings.NewReader(src), "tca.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, port.AllocationRow{Row: 2, OutletCode: "OUT-001", CampaignName: "Summer Cooler", Amount: "5000"}, rows[0])
	assert.Equal(t, 4, rows[1].Row)
	assert.Equal(t, "OUT-002", rows[1].OutletCode)
	assert.Equal(t, "2500.50", rows[1].Amount)
}

func TestParseInstallmentsWorkbook(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Outlet", "Campaign", "Amount", "UTR No", "Payment Date", "Remarks"},
		{"OUT-001", "Summer Cooler", 1000, "utr001", 46023, "first"},
		{"OUT-002", "Summer Cooler", "250.75", "UTR002", "2026-01-15"},
	})

	rows, err := ParseInstallments(buf, "payments.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "OUT-001", rows[0].OutletCode)
	assert.Equal(t, "1000", rows[0].Amount)
	assert.Equal(t, "utr001", rows[0].UTR)
	assert.Equal(t, "2026-01-01", rows[0].Date)
	assert.Equal(t, "first", rows[0].Remarks)

	assert.Equal(t, 3, rows[1].Row)
	assert.Equal(t, "2026-01-15", rows[1].Date)
	assert.Empty(t, rows[1].Remarks)
}

// Numeric dates only mean Excel serials in workbooks.
func TestParseInstallmentsNumericDates(t *testing.T) {
	src := "Outlet Code,Campaign Name,Amount,UTR,Date\n" +
		"OUT-001,Summer Cooler,10,U1,20260301\n" +
		"OUT-001,Summer Cooler,10,U2,46023\n"
	rows, err := ParseInstallments(strings.NewReader(src), "payments.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "20260301", rows[0].Date)
	assert.Equal(t, "46023", rows[1].Date)

	buf := workbook(t, [][]any{
		{"Outlet Code", "Campaign Name", "Amount", "UTR", "Date"},
		{"OUT-001", "Summer Cooler", 10, "U3", 20260301},
		{"OUT-001", "Summer Cooler", 10, "U4", 46023},
	})
	rows, err = ParseInstallments(buf, "payments.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "20260301", rows[0].Date)
	assert.Equal(t, "2026-01-01", rows[1].Date)
}

func TestParseMissingColumns(t *testing.T) {
	_, err := ParseInstallments(strings.NewReader("Outlet Code,Amount\nOUT-001,10\n"), "x.csv")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "campaignname")
	assert.Contains(t, err.Error(), "utr")

	_, err = ParseAllocations(strings.NewReader(""), "x.csv")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseUnsupportedFile(t *testing.T) {
	_, err := ParseAllocations(strings.NewReader("a"), "tca.pdf")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWriteLedger(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteLedger(buf, []port.LedgerExportRow{{
		OutletCode:   "OUT-001",
		ShopName:     "Sharma Stores",
		CampaignName: "Summer Cooler",
		Allocated:    decimal.RequireFromString("5000"),
		Paid:         decimal.RequireFromString("1200.5"),
		Pending:      decimal.RequireFromString("3799.5"),
		Installments: 2,
	}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, ledgerSheet, f.GetSheetName(0))
	rows, err := f.GetRows(ledgerSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Outlet Code", rows[0][0])
	assert.Equal(t, []string{"OUT-001", "Sharma Stores", "Summer Cooler", "5000", "1200.5", "3799.5", "2"}, rows[1])
}

func TestTemplatesRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteInstallmentTemplate(buf))
	rows, err := ParseInstallments(buf, "template.xlsx")
	require.NoError(t, err)
	assert.Empty(t, rows)

	buf.Reset()
	require.NoError(t, WriteAllocationTemplate(buf))
	allocs, err := ParseAllocations(buf, "template.xlsx")
	require.NoError(t, err)
	assert.Empty(t, allocs)
}
