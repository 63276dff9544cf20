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

const visitColumns = `id, campaign_id, employee_id, retailer_id, visit_date, status, notes, created_at, updated_at`

// VisitRepository implements port.VisitRepository.
type VisitRepository struct {
	pool *pgxpool.Pool
}

func NewVisitRepository(pool *pgxpool.Pool) *VisitRepository {
	return &VisitRepository{pool: pool}
}

func scanVisit(row pgx.CollectableRow) (domain.VisitSchedule, error) {
	var v domain.VisitSchedule
	err := row.Scan(&v.ID, &v.CampaignID, &v.EmployeeID, &v.RetailerID, &v.VisitDate, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *VisitRepository) CreateVisit(ctx context.Context, v *domain.VisitSchedule) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO visit_schedules (`+visitColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		v.ID, v.CampaignID, v.EmployeeID, v.RetailerID, v.VisitDate, v.Status, v.Notes, v.CreatedAt, v.UpdatedAt)
	return mapError(err)
}

func (r *VisitRepository) GetVisit(ctx context.Context, id uuid.UUID) (*domain.VisitSchedule, error) {
	return one(ctx, r.pool, scanVisit, `SELECT `+visitColumns+` FROM visit_schedules WHERE id = $1`, id)
}

func (r *VisitRepository) UpdateVisit(ctx context.Context, v *domain.VisitSchedule) error {
	tag, err := r.pool.Exec(ctx, `UPDATE visit_schedules SET visit_date = $2, status = $3, notes = $4, updated_at = $5 WHERE id = $1`,
		v.ID, v.VisitDate, v.Status, v.Notes, v.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visit: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *VisitRepository) DeleteVisit(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM visit_schedules WHERE id = $1`, id)
	return err
}

// ListVisits returns visits ordered by date, newest first.
func (r *VisitRepository) ListVisits(ctx context.Context, filter port.VisitFilter) ([]domain.VisitSchedule, error) {
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
	if filter.EmployeeID != nil {
		add("employee_id = $%d", *filter.EmployeeID)
	}
	if filter.RetailerID != nil {
		add("retailer_id = $%d", *filter.RetailerID)
	}
	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}
	if filter.From != nil {
		add("visit_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("visit_date <= $%d", *filter.To)
	}
	query := `SELECT ` + visitColumns + ` FROM visit_schedules`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY visit_date DESC"
	return list(ctx, r.pool, scanVisit, query, args...)
}

func (r *VisitRepository) CountVisitsByStatus(ctx context.Context, campaignID uuid.UUID) (map[domain.VisitStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, count(*) FROM visit_schedules WHERE campaign_id = $1 GROUP BY status`, campaignID)
	if err != nil {
		return nil, err
	}
	counts := make(map[domain.VisitStatus]int64)
	var (
		status domain.VisitStatus
		n      int64
	)
	_, err = pgx.ForEachRow(rows, []any{&status, &n}, func() error {
		counts[status] = n
		return nil
	})
	return counts, err
}
