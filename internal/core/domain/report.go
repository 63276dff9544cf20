package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportType selects which details block a report carries.
type ReportType string

const (
	ReportWindowDisplay ReportType = "window_display"
	ReportStock         ReportType = "stock"
	ReportOthers        ReportType = "others"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportWindowDisplay, ReportStock, ReportOthers:
		return true
	}
	return false
}

// StockType classifies a stock report line.
type StockType string

const (
	StockOpening  StockType = "opening"
	StockClosing  StockType = "closing"
	StockPurchase StockType = "purchase"
	StockSold     StockType = "sold"
)

type WindowDisplayDetails struct {
	Images []string `json:"images"`
}

type StockDetails struct {
	Brand     string    `json:"brand"`
	Product   string    `json:"product"`
	SKU       string    `json:"sku"`
	StockType StockType `json:"stock_type"`
	Quantity  int       `json:"quantity"`
}

type OtherDetails struct {
	Remarks string   `json:"remarks"`
	Files   []string `json:"files"`
}

// Report is submitted by an employee or a retailer against a campaign.
// Exactly one of the details blocks is set, matching Type.
type Report struct {
	ID          uuid.UUID  `json:"id"`
	CampaignID  uuid.UUID  `json:"campaign_id"`
	RetailerID  uuid.UUID  `json:"retailer_id"`
	EmployeeID  *uuid.UUID `json:"employee_id,omitempty"`
	VisitID     *uuid.UUID `json:"visit_id,omitempty"`
	SubmittedBy Role       `json:"submitted_by"`
	Type        ReportType `json:"type"`

	WindowDisplay *WindowDisplayDetails `json:"window_display,omitempty"`
	Stock         *StockDetails         `json:"stock,omitempty"`
	Others        *OtherDetails         `json:"others,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Validate checks that the details block matches the report type.
func (r *Report) Validate() error {
	switch r.Type {
	case ReportWindowDisplay:
		if r.WindowDisplay == nil || len(r.WindowDisplay.Images) == 0 {
			return fmt.Errorf("%w: window display report needs at least one image", ErrInvalidInput)
		}
		if r.Stock != nil || r.Others != nil {
			return fmt.Errorf("%w: unexpected details for %s", ErrInvalidInput, r.Type)
		}
	case ReportStock:
		s := r.Stock
		if s == nil || strings.TrimSpace(s.Product) == "" {
			return fmt.Errorf("%w: stock report needs a product", ErrInvalidInput)
		}
		switch s.StockType {
		case StockOpening, StockClosing, StockPurchase, StockSold:
		default:
			return fmt.Errorf("%w: unknown stock type %q", ErrInvalidInput, s.StockType)
		}
		if s.Quantity < 0 {
			return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
		}
		if r.WindowDisplay != nil || r.Others != nil {
			return fmt.Errorf("%w: unexpected details for %s", ErrInvalidInput, r.Type)
		}
	case ReportOthers:
		if r.Others == nil || strings.TrimSpace(r.Others.Remarks) == "" {
			return fmt.Errorf("%w: remarks are required", ErrInvalidInput)
		}
		if r.WindowDisplay != nil || r.Stock != nil {
			return fmt.Errorf("%w: unexpected details for %s", ErrInvalidInput, r.Type)
		}
	default:
		return fmt.Errorf("%w: unknown report type %q", ErrInvalidInput, r.Type)
	}
	return nil
}

// DetailsJSON encodes the populated details block for storage.
func (r *Report) DetailsJSON() ([]byte, error) {
	switch r.Type {
	case ReportWindowDisplay:
		return json.Marshal(r.WindowDisplay)
	case ReportStock:
		return json.Marshal(r.Stock)
	case ReportOthers:
		return json.Marshal(r.Others)
	}
	return nil, fmt.Errorf("%w: unknown report type %q", ErrInvalidInput, r.Type)
}

// SetDetailsJSON decodes stored details according to r.Type.
func (r *Report) SetDetailsJSON(raw []byte) error {
	switch r.Type {
	case ReportWindowDisplay:
		r.WindowDisplay = &WindowDisplayDetails{}
		return json.Unmarshal(raw, r.WindowDisplay)
	case ReportStock:
		r.Stock = &StockDetails{}
		return json.Unmarshal(raw, r.Stock)
	case ReportOthers:
		r.Others = &OtherDetails{}
		return json.Unmarshal(raw, r.Others)
	}
	return fmt.Errorf("%w: unknown report type %q", ErrInvalidInput, r.Type)
}
