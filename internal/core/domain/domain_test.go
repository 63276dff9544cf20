package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRespond(t *testing.T) {
	now := time.Now()
	a := Assignment{Status: AssignmentPending}
	require.ErrorIs(t, a.Respond(AssignmentPending, now), ErrInvalidTransition)
	require.NoError(t, a.Respond(AssignmentAccepted, now))
	require.Equal(t, AssignmentAccepted, a.Status)
	require.NotNil(t, a.RespondedAt)
	require.ErrorIs(t, a.Respond(AssignmentRejected, now), ErrInvalidTransition)
}

func TestVisitTransition(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	v := VisitSchedule{Status: VisitScheduled, VisitDate: now.AddDate(0, 0, 2)}
	require.ErrorIs(t, v.Transition(VisitCompleted, now), ErrInvalidTransition)
	require.NoError(t, v.Transition(VisitCancelled, now))
	require.ErrorIs(t, v.Transition(VisitMissed, now), ErrInvalidTransition)

	today := VisitSchedule{Status: VisitScheduled, VisitDate: now.Add(3 * time.Hour)}
	require.NoError(t, today.Transition(VisitCompleted, now))
	require.Equal(t, now, today.UpdatedAt)

	bogus := VisitSchedule{Status: VisitScheduled}
	require.ErrorIs(t, bogus.Transition("done", now), ErrInvalidTransition)
}

func TestReportValidate(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		ok     bool
	}{
		{"window display", Report{Type: ReportWindowDisplay, WindowDisplay: &WindowDisplayDetails{Images: []string{"a.jpg"}}}, true},
		{"window display without images", Report{Type: ReportWindowDisplay, WindowDisplay: &WindowDisplayDetails{}}, false},
		{"stock", Report{Type: ReportStock, Stock: &StockDetails{Product: "Cola", StockType: StockClosing, Quantity: 4}}, true},
		{"stock negative", Report{Type: ReportStock, Stock: &StockDetails{Product: "Cola", StockType: StockClosing, Quantity: -1}}, false},
		{"stock bad type", Report{Type: ReportStock, Stock: &StockDetails{Product: "Cola", StockType: "lost"}}, false},
		{"others", Report{Type: ReportOthers, Others: &OtherDetails{Remarks: "shop closed"}}, true},
		{"others mixed", Report{Type: ReportOthers, Others: &OtherDetails{Remarks: "x"}, Stock: &StockDetails{}}, false},
		{"unknown", Report{Type: "survey"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.report.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestReportDetailsJSON(t *testing.T) {
	r := Report{ID: uuid.New(), Type: ReportStock, Stock: &StockDetails{Product: "Chips", SKU: "CH-1", StockType: StockOpening, Quantity: 12}}
	raw, err := r.DetailsJSON()
	require.NoError(t, err)

	loaded := Report{Type: ReportStock}
	require.NoError(t, loaded.SetDetailsJSON(raw))
	require.Equal(t, r.Stock, loaded.Stock)
	require.Nil(t, loaded.Others)
}
