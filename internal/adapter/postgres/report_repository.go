package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

const reportColumns = `id, campaign_id, retailer_id, employee_id, visit_id, submitted_by, type, details, created_at`

// ReportRepository implements port.ReportRepository. Type specific
// details are kept in a JSONB column.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func scanReport(row pgx.CollectableRow) (domain.Report, error) {
	var (
		rep     domain.Report
		details []byte
	)
	err := row.Scan(&rep.ID, &rep.CampaignID, &rep.RetailerID, &rep.EmployeeID, &rep.VisitID,
		&rep.SubmittedBy, &rep.Type, &details, &rep.CreatedAt)
	if err != nil {
		return rep, err
	}
	if err = rep.SetDetailsJSON(details); err != nil {
		return rep, fmt.Errorf("report %s details: %w", rep.ID, err)
	}
	return rep, nil
}

func (r *ReportRepository) CreateReport(ctx context.Context, rep *domain.Report) error {
	details, err := rep.DetailsJSON()
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO reports (`+reportColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rep.ID, rep.CampaignID, rep.RetailerID, rep.EmployeeID, rep.VisitID, rep.SubmittedBy, rep.Type, details, rep.CreatedAt)
	return mapError(err)
}

func (r *ReportRepository) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return one(ctx, r.pool, scanReport, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
}

func (r *ReportRepository) DeleteReport(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	return err
}

// ListReports returns matching reports, newest first.
func (r *ReportRepository) ListReports(ctx context.Context, filter port.ReportFilter) ([]domain.Report, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if filter.CampaignID != nil {
		add("campaign_id = $%d", *filter.CampaignID)
	}
	if len(filter.CampaignIDs) > 0 {
		add("campaign_id = ANY($%d)", filter.CampaignIDs)
	}
	if filter.RetailerID != nil {
		add("retailer_id = $%d", *filter.RetailerID)
	}
	if filter.EmployeeID != nil {
		add("employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Type != nil {
		add("type = $%d", *filter.Type)
	}
	if filter.From != nil {
		add("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("created_at <= $%d", *filter.To)
	}
	query := `SELECT ` + reportColumns + ` FROM reports`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	return list(ctx, r.pool, scanReport, query, args...)
}

func (r *ReportRepository) CountReportsByType(ctx context.Context, campaignID uuid.UUID) (map[domain.ReportType]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT type, count(*) FROM reports WHERE campaign_id = $1 GROUP BY type`, campaignID)
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.ReportType]int64)
	var (
		typ domain.ReportType
		n   int64
	)
	_, err = pgx.ForEachRow(rows, []any{&typ, &n}, func() error {
		counts[typ] = n
		return nil
	})
	return counts, err
}
