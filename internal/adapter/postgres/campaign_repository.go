package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

const campaignColumns = `id, client_id, name, type, description, states, start_date, end_date, status, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// assignmentTable returns the table and party column for an assignment kind.
func assignmentTable(kind domain.Role) (table, column string, err error) {
	switch kind {
	case domain.RoleEmployee:
		return "campaign_employees", "employee_id", nil
	case domain.RoleRetailer:
		return "campaign_retailers", "retailer_id", nil
	}
	return "", "", fmt.Errorf("%w: no assignments for role %q", domain.ErrInvalidInput, kind)
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.ClientID, &c.Name, &c.Type, &c.Description, &c.States,
		&c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if c.States == nil {
		c.States = []string{}
	}
	return c, err
}

func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		c.ID, c.ClientID, c.Name, c.Type, c.Description, c.States, c.StartDate, c.EndDate, c.Status, c.CreatedAt, c.UpdatedAt)
	return mapError(err)
}

func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET client_id = $2, name = $3, type = $4, description = $5, states = $6,
    start_date = $7, end_date = $8, status = $9, updated_at = $10
WHERE id = $1`,
		c.ID, c.ClientID, c.Name, c.Type, c.Description, c.States, c.StartDate, c.EndDate, c.Status, c.UpdatedAt)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign: %w", domain.ErrNotFound)
	}
	return nil
}

// DeleteCampaign removes a campaign with its assignments, visits and
// reports. Campaigns that still have ledger entries are refused.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return mapError(err)
}

func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return one(ctx, r.pool, scanCampaign, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
}

func (r *CampaignRepository) FindCampaignByName(ctx context.Context, name string) (*domain.Campaign, error) {
	return one(ctx, r.pool, scanCampaign, `SELECT `+campaignColumns+` FROM campaigns WHERE lower(name) = lower($1)`, name)
}

func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.ClientID != nil {
		where = append(where, "c.client_id = "+arg(*filter.ClientID))
	}
	if filter.EmployeeID != nil {
		where = append(where, "EXISTS (SELECT 1 FROM campaign_employees ce WHERE ce.campaign_id = c.id AND ce.employee_id = "+arg(*filter.EmployeeID)+")")
	}
	if filter.RetailerID != nil {
		where = append(where, "EXISTS (SELECT 1 FROM campaign_retailers cr WHERE cr.campaign_id = c.id AND cr.retailer_id = "+arg(*filter.RetailerID)+")")
	}
	if filter.Status != nil {
		where = append(where, "c.status = "+arg(*filter.Status))
	}
	query := `SELECT ` + prefixColumns("c", campaignColumns) + ` FROM campaigns c`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.start_date DESC, c.name"
	return list(ctx, r.pool, scanCampaign, query, args...)
}

func (r *CampaignRepository) AddAssignments(ctx context.Context, kind domain.Role, campaignID uuid.UUID, partyIDs []uuid.UUID, at time.Time) (int64, error) {
	table, column, err := assignmentTable(kind)
	if err != nil {
		return 0, err
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (campaign_id, %s, status, assigned_at)
SELECT $1, party, $2, $3 FROM unnest($4::uuid[]) AS party
ON CONFLICT DO NOTHING`, table, column), campaignID, domain.AssignmentPending, at, partyIDs)
	if err != nil {
		return 0, mapError(err)
	}
	return tag.RowsAffected(), nil
}

// RemoveAssignment relies on the foreign keys of employee_retailer_links
// to drop dependent links.
func (r *CampaignRepository) RemoveAssignment(ctx context.Context, kind domain.Role, campaignID, partyID uuid.UUID) error {
	table, column, err := assignmentTable(kind)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE campaign_id = $1 AND %s = $2`, table, column), campaignID, partyID)
	return err
}

func scanAssignment(row pgx.CollectableRow) (domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.CampaignID, &a.PartyID, &a.Status, &a.AssignedAt, &a.RespondedAt)
	return a, err
}

func (r *CampaignRepository) GetAssignment(ctx context.Context, kind domain.Role, campaignID, partyID uuid.UUID) (*domain.Assignment, error) {
	table, column, err := assignmentTable(kind)
	if err != nil {
		return nil, err
	}
	return one(ctx, r.pool, scanAssignment, fmt.Sprintf(`SELECT campaign_id, %[2]s, status, assigned_at, responded_at
FROM %[1]s WHERE campaign_id = $1 AND %[2]s = $2`, table, column), campaignID, partyID)
}

func (r *CampaignRepository) SaveAssignment(ctx context.Context, kind domain.Role, a *domain.Assignment) error {
	table, column, err := assignmentTable(kind)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`UPDATE %s SET status = $3, responded_at = $4
WHERE campaign_id = $1 AND %s = $2`, table, column), a.CampaignID, a.PartyID, a.Status, a.RespondedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assignment: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *CampaignRepository) ListAssignments(ctx context.Context, kind domain.Role, campaignID uuid.UUID) ([]domain.Assignment, error) {
	table, column, err := assignmentTable(kind)
	if err != nil {
		return nil, err
	}
	return list(ctx, r.pool, scanAssignment, fmt.Sprintf(`SELECT campaign_id, %[2]s, status, assigned_at, responded_at
FROM %[1]s WHERE campaign_id = $1 ORDER BY assigned_at`, table, column), campaignID)
}

func (r *CampaignRepository) LinkRetailers(ctx context.Context, campaignID, employeeID uuid.UUID, retailerIDs []uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `INSERT INTO employee_retailer_links (campaign_id, employee_id, retailer_id)
SELECT $1, $2, retailer FROM unnest($3::uuid[]) AS retailer
ON CONFLICT DO NOTHING`, campaignID, employeeID, retailerIDs)
	if err != nil {
		return 0, mapError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *CampaignRepository) IsLinked(ctx context.Context, campaignID, employeeID, retailerID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employee_retailer_links
WHERE campaign_id = $1 AND employee_id = $2 AND retailer_id = $3)`, campaignID, employeeID, retailerID).Scan(&ok)
	return ok, err
}

// prefixColumns qualifies a comma separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
