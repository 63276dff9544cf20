package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

// maxTxAttempts bounds retries of serialization failures in UpdateBudget.
const maxTxAttempts = 3

// LedgerRepository implements port.LedgerRepository on three tables:
// retailer_budgets, campaign_budgets and installments.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// GetBudget returns the ledger of a retailer.
func (r *LedgerRepository) GetBudget(ctx context.Context, retailerID uuid.UUID) (*domain.RetailerBudget, error) {
	return loadBudget(ctx, r.pool, retailerID, false)
}

// ListBudgets returns ledgers ordered by creation time.
func (r *LedgerRepository) ListBudgets(ctx context.Context, filter port.BudgetFilter) ([]domain.RetailerBudget, error) {
	query := `SELECT id, retailer_id, total_allocated, total_paid, total_pending, created_at, updated_at
FROM retailer_budgets rb`
	var args []any
	if filter.CampaignID != nil {
		query += ` WHERE EXISTS (SELECT 1 FROM campaign_budgets cb WHERE cb.budget_id = rb.id AND cb.campaign_id = $1)`
		args = append(args, *filter.CampaignID)
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	budgets, err := pgx.CollectRows(rows, scanBudget)
	if err != nil {
		return nil, err
	}
	if err = loadEntries(ctx, r.pool, budgets); err != nil {
		return nil, err
	}
	if filter.CampaignID != nil {
		for i := range budgets {
			b := &budgets[i]
			if cb := b.Campaign(*filter.CampaignID); cb != nil {
				b.Campaigns = []domain.CampaignBudget{*cb}
			}
			b.Recalculate()
		}
	}
	return budgets, nil
}

// UpdateBudget runs fn against the locked ledger inside a serializable
// transaction and rewrites the ledger with recalculated totals. A missing
// ledger is created in the same transaction. Serialization failures are
// retried.
func (r *LedgerRepository) UpdateBudget(ctx context.Context, retailerID uuid.UUID, fn func(*domain.RetailerBudget) error) (*domain.RetailerBudget, error) {
	var (
		b   *domain.RetailerBudget
		err error
	)
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		b, err = r.updateBudget(ctx, retailerID, fn)
		if err == nil || !retryable(err) {
			break
		}
	}
	if err != nil {
		return nil, mapError(err)
	}
	return b, nil
}

func (r *LedgerRepository) updateBudget(ctx context.Context, retailerID uuid.UUID, fn func(*domain.RetailerBudget) error) (b *domain.RetailerBudget, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			b = nil
		}
	}()

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `INSERT INTO retailer_budgets (id, retailer_id, created_at, updated_at)
VALUES ($1, $2, $3, $3) ON CONFLICT (retailer_id) DO NOTHING`, uuid.New(), retailerID, now)
	if err != nil {
		return nil, err
	}
	b, err = loadBudget(ctx, tx, retailerID, true)
	if err != nil {
		return nil, err
	}

	if err = fn(b); err != nil {
		return nil, err
	}
	b.Recalculate()

	if err = saveBudget(ctx, tx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UTRExists checks the global UTR index.
func (r *LedgerRepository) UTRExists(ctx context.Context, utr string, except uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM installments WHERE utr = $1 AND id <> $2)`,
		domain.NormalizeUTR(utr), except).Scan(&exists)
	return exists, err
}

// CampaignTotals sums allocation, paid and pending amounts of a campaign.
func (r *LedgerRepository) CampaignTotals(ctx context.Context, campaignID uuid.UUID) (*port.LedgerTotals, error) {
	var t port.LedgerTotals
	err := r.pool.QueryRow(ctx, `SELECT count(DISTINCT rb.retailer_id),
       COALESCE(sum(cb.allocated_amount), 0),
       COALESCE(sum(cb.paid_amount), 0),
       COALESCE(sum(cb.pending_amount), 0)
FROM campaign_budgets cb
JOIN retailer_budgets rb ON rb.id = cb.budget_id
WHERE cb.campaign_id = $1`, campaignID).Scan(&t.Retailers, &t.Allocated, &t.Paid, &t.Pending)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanBudget(row pgx.CollectableRow) (domain.RetailerBudget, error) {
	var b domain.RetailerBudget
	err := row.Scan(&b.ID, &b.RetailerID, &b.TotalAllocated, &b.TotalPaid, &b.TotalPending, &b.CreatedAt, &b.UpdatedAt)
	b.Campaigns = []domain.CampaignBudget{}
	return b, err
}

func loadBudget(ctx context.Context, q querier, retailerID uuid.UUID, lock bool) (*domain.RetailerBudget, error) {
	query := `SELECT id, retailer_id, total_allocated, total_paid, total_pending, created_at, updated_at
FROM retailer_budgets WHERE retailer_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	b, err := one(ctx, q, scanBudget, query, retailerID)
	if err != nil || b == nil {
		return nil, err
	}
	budgets := []domain.RetailerBudget{*b}
	if err = loadEntries(ctx, q, budgets); err != nil {
		return nil, err
	}
	return &budgets[0], nil
}

// loadEntries fills the campaign entries and installments of budgets.
func loadEntries(ctx context.Context, q querier, budgets []domain.RetailerBudget) error {
	if len(budgets) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(budgets))
	byBudget := make(map[uuid.UUID]*domain.RetailerBudget, len(budgets))
	for i := range budgets {
		ids[i] = budgets[i].ID
		byBudget[budgets[i].ID] = &budgets[i]
	}

	rows, err := q.Query(ctx, `SELECT budget_id, id, campaign_id, allocated_amount, paid_amount, pending_amount, created_at, updated_at
FROM campaign_budgets WHERE budget_id = ANY($1) ORDER BY created_at, id`, ids)
	if err != nil {
		return err
	}
	type entry struct {
		budgetID uuid.UUID
		cb       domain.CampaignBudget
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entry, error) {
		var e entry
		err := row.Scan(&e.budgetID, &e.cb.ID, &e.cb.CampaignID, &e.cb.AllocatedAmount, &e.cb.PaidAmount,
			&e.cb.PendingAmount, &e.cb.CreatedAt, &e.cb.UpdatedAt)
		e.cb.Installments = []domain.Installment{}
		return e, err
	})
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	entryIDs := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		entryIDs[i] = e.cb.ID
	}
	rows, err = q.Query(ctx, `SELECT campaign_budget_id, id, amount, utr, paid_on, remarks, created_at, updated_at
FROM installments WHERE campaign_budget_id = ANY($1) ORDER BY paid_on, created_at, id`, entryIDs)
	if err != nil {
		return err
	}
	installments := make(map[uuid.UUID][]domain.Installment, len(entries))
	var (
		owner uuid.UUID
		in    domain.Installment
	)
	_, err = pgx.ForEachRow(rows, []any{&owner, &in.ID, &in.Amount, &in.UTR, &in.PaidOn, &in.Remarks, &in.CreatedAt, &in.UpdatedAt}, func() error {
		installments[owner] = append(installments[owner], in)
		return nil
	})
	if err != nil {
		return err
	}

	for _, e := range entries {
		if insts, ok := installments[e.cb.ID]; ok {
			e.cb.Installments = insts
		}
		b := byBudget[e.budgetID]
		b.Campaigns = append(b.Campaigns, e.cb)
	}
	return nil
}

// saveBudget rewrites a ledger: entries and installments that are gone are
// deleted first, then everything left is upserted.
func saveBudget(ctx context.Context, tx pgx.Tx, b *domain.RetailerBudget) error {
	entryIDs := make([]uuid.UUID, 0, len(b.Campaigns))
	var instIDs []uuid.UUID
	for _, cb := range b.Campaigns {
		entryIDs = append(entryIDs, cb.ID)
		for _, in := range cb.Installments {
			instIDs = append(instIDs, in.ID)
		}
	}
	if instIDs == nil {
		instIDs = []uuid.UUID{}
	}

	batch := &pgx.Batch{}
	batch.Queue(`UPDATE retailer_budgets
SET total_allocated = $2, total_paid = $3, total_pending = $4, updated_at = $5
WHERE id = $1`, b.ID, b.TotalAllocated, b.TotalPaid, b.TotalPending, b.UpdatedAt)
	batch.Queue(`DELETE FROM campaign_budgets WHERE budget_id = $1 AND NOT (id = ANY($2))`, b.ID, entryIDs)
	batch.Queue(`DELETE FROM installments i USING campaign_budgets cb
WHERE i.campaign_budget_id = cb.id AND cb.budget_id = $1 AND NOT (i.id = ANY($2))`, b.ID, instIDs)
	for _, cb := range b.Campaigns {
		batch.Queue(`INSERT INTO campaign_budgets
    (id, budget_id, campaign_id, allocated_amount, paid_amount, pending_amount, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    allocated_amount = EXCLUDED.allocated_amount,
    paid_amount = EXCLUDED.paid_amount,
    pending_amount = EXCLUDED.pending_amount,
    updated_at = EXCLUDED.updated_at`,
			cb.ID, b.ID, cb.CampaignID, cb.AllocatedAmount, cb.PaidAmount, cb.PendingAmount, cb.CreatedAt, cb.UpdatedAt)
		for _, in := range cb.Installments {
			batch.Queue(`INSERT INTO installments
    (id, campaign_budget_id, amount, utr, paid_on, remarks, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    amount = EXCLUDED.amount,
    utr = EXCLUDED.utr,
    paid_on = EXCLUDED.paid_on,
    remarks = EXCLUDED.remarks,
    updated_at = EXCLUDED.updated_at`,
				in.ID, cb.ID, in.Amount, in.UTR, in.PaidOn, in.Remarks, in.CreatedAt, in.UpdatedAt)
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("save ledger %s: %w", b.ID, err)
	}
	return nil
}
