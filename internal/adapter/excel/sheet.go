// Package excel reads ledger import sheets and writes ledger exports.
// Imports accept .xlsx workbooks (first sheet) and .csv files; columns are
// located by header name, so their order does not matter.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

// column keys, matched against normalized header cells
const (
	colOutletCode   = "outletcode"
	colCampaignName = "campaignname"
	colTCA          = "tca"
	colAmount       = "amount"
	colUTR          = "utr"
	colDate         = "date"
	colRemarks      = "remarks"
)

var aliases = map[string]string{
	"outlet":            colOutletCode,
	"outletid":          colOutletCode,
	"retailercode":      colOutletCode,
	"campaign":          colCampaignName,
	"allocation":        colTCA,
	"allocatedamount":   colTCA,
	"totalallocation":   colTCA,
	"installment":       colAmount,
	"installmentamount": colAmount,
	"paidamount":        colAmount,
	"utrno":             colUTR,
	"utrnumber":         colUTR,
	"paymentdate":       colDate,
	"paidon":            colDate,
	"remark":            colRemarks,
}

const (
	extXLSX = ".xlsx"
	extXLSM = ".xlsm"
)

// maxSerial is the Excel serial of 9999-12-31, the last date Excel shows.
const maxSerial = 2958465

func isWorkbook(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == extXLSX || ext == extXLSM
}

// ReadRows returns the rows of the first sheet of an .xlsx workbook or of
// a .csv file. Date cells of workbooks come back as Excel serial numbers.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		return cr.ReadAll()
	case extXLSX, extXLSM:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable workbook: %v", domain.ErrInvalidInput, err)
		}
		defer f.Close()
		sheet := f.GetSheetName(0)
		return f.GetRows(sheet, excelize.Options{RawCellValue: true})
	}
	return nil, fmt.Errorf("%w: unsupported file type %q", domain.ErrInvalidInput, filepath.Ext(filename))
}

// ParseAllocations reads a TCA sheet: Outlet Code, Campaign Name, TCA.
func ParseAllocations(r io.Reader, filename string) ([]port.AllocationRow, error) {
	rows, err := ReadRows(r, filename)
	if err != nil {
		return nil, err
	}
	s, err := newSheet(rows, colOutletCode, colCampaignName, colTCA)
	if err != nil {
		return nil, err
	}
	out := make([]port.AllocationRow, 0, len(s.data))
	for i, row := range s.data {
		if blank(row) {
			continue
		}
		out = append(out, port.AllocationRow{
			Row:          i + 2,
			OutletCode:   s.cell(row, colOutletCode),
			CampaignName: s.cell(row, colCampaignName),
			Amount:       s.cell(row, colTCA),
		})
	}
	return out, nil
}

// ParseInstallments reads an installment sheet: Outlet Code, Campaign
// Name, Amount, UTR, Date and Remarks. Date and Remarks may be missing.
func ParseInstallments(r io.Reader, filename string) ([]port.InstallmentRow, error) {
	rows, err := ReadRows(r, filename)
	if err != nil {
		return nil, err
	}
	s, err := newSheet(rows, colOutletCode, colCampaignName, colAmount, colUTR)
	if err != nil {
		return nil, err
	}
	workbook := isWorkbook(filename)
	out := make([]port.InstallmentRow, 0, len(s.data))
	for i, row := range s.data {
		if blank(row) {
			continue
		}
		date := s.cell(row, colDate)
		if workbook {
			date = serialToDate(date)
		}
		out = append(out, port.InstallmentRow{
			Row:          i + 2,
			OutletCode:   s.cell(row, colOutletCode),
			CampaignName: s.cell(row, colCampaignName),
			Amount:       s.cell(row, colAmount),
			UTR:          s.cell(row, colUTR),
			Date:         date,
			Remarks:      s.cell(row, colRemarks),
		})
	}
	return out, nil
}

type sheet struct {
	index map[string]int
	data  [][]string
}

func newSheet(rows [][]string, required ...string) (*sheet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet is empty", domain.ErrInvalidInput)
	}
	s := &sheet{index: make(map[string]int), data: rows[1:]}
	for i, h := range rows[0] {
		key := normalizeHeader(h)
		if alias, ok := aliases[key]; ok {
			key = alias
		}
		if _, dup := s.index[key]; !dup && key != "" {
			s.index[key] = i
		}
	}
	var missing []string
	for _, col := range required {
		if _, ok := s.index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return s, nil
}

func (s *sheet) cell(row []string, col string) string {
	i, ok := s.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// serialToDate turns an Excel date serial into YYYY-MM-DD. Any other value,
// including numbers outside the Excel date range, is returned unchanged for
// the ledger to parse or reject.
func serialToDate(v string) string {
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil || serial < 1 || serial > maxSerial {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return v
	}
	return t.Format("2006-01-02")
}
