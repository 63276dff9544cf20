package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

const (
	userColumns     = `id, name, email, phone, password_hash, role, profile_id, created_at`
	retailerColumns = `id, outlet_code, shop_name, owner_name, city, state, phone, email, created_at`
	employeeColumns = `id, employee_code, name, city, state, phone, email, created_at`
	clientColumns   = `id, organization, contact_name, email, created_at`
)

// AccountRepository implements port.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// CreateUser inserts the role profile and the user in one transaction.
func (r *AccountRepository) CreateUser(ctx context.Context, u *domain.User, p port.NewProfile) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			err = mapError(err)
			return
		}
		err = tx.Commit(ctx)
	}()

	switch u.Role {
	case domain.RoleRetailer:
		if p.Retailer != nil {
			rt := p.Retailer
			rt.ID = uuid.New()
			_, err = tx.Exec(ctx, `INSERT INTO retailers (`+retailerColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
				rt.ID, rt.OutletCode, rt.ShopName, rt.OwnerName, rt.City, rt.State, rt.Phone, rt.Email, rt.CreatedAt)
			u.ProfileID = rt.ID
		}
	case domain.RoleEmployee:
		if p.Employee != nil {
			e := p.Employee
			e.ID = uuid.New()
			_, err = tx.Exec(ctx, `INSERT INTO employees (`+employeeColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
				e.ID, e.EmployeeCode, e.Name, e.City, e.State, e.Phone, e.Email, e.CreatedAt)
			u.ProfileID = e.ID
		}
	case domain.RoleClient:
		if p.Client != nil {
			c := p.Client
			c.ID = uuid.New()
			_, err = tx.Exec(ctx, `INSERT INTO clients (`+clientColumns+`) VALUES ($1,$2,$3,$4,$5)`,
				c.ID, c.Organization, c.ContactName, c.Email, c.CreatedAt)
			u.ProfileID = c.ID
		}
	}
	if err != nil {
		return err
	}

	u.ID = uuid.New()
	_, err = tx.Exec(ctx, `INSERT INTO users (`+userColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role, nullUUID(u.ProfileID), u.CreatedAt)
	return err
}

func (r *AccountRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.user(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *AccountRepository) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.user(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *AccountRepository) user(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		u       domain.User
		profile *uuid.UUID
	)
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &profile, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.ProfileID = fromNullUUID(profile)
	return &u, nil
}

func (r *AccountRepository) CountUsersByRole(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = $1`, role).Scan(&n)
	return n, err
}

func scanRetailer(row pgx.CollectableRow) (domain.Retailer, error) {
	var rt domain.Retailer
	err := row.Scan(&rt.ID, &rt.OutletCode, &rt.ShopName, &rt.OwnerName, &rt.City, &rt.State, &rt.Phone, &rt.Email, &rt.CreatedAt)
	return rt, err
}

func scanEmployee(row pgx.CollectableRow) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(&e.ID, &e.EmployeeCode, &e.Name, &e.City, &e.State, &e.Phone, &e.Email, &e.CreatedAt)
	return e, err
}

func scanClient(row pgx.CollectableRow) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Organization, &c.ContactName, &c.Email, &c.CreatedAt)
	return c, err
}

// one runs a single-row query and returns nil when nothing matched.
func one[T any](ctx context.Context, q querier, scan pgx.RowToFunc[T], query string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	v, err := pgx.CollectExactlyOneRow(rows, scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func list[T any](ctx context.Context, q querier, scan pgx.RowToFunc[T], query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}

func (r *AccountRepository) GetRetailer(ctx context.Context, id uuid.UUID) (*domain.Retailer, error) {
	return one(ctx, r.pool, scanRetailer, `SELECT `+retailerColumns+` FROM retailers WHERE id = $1`, id)
}

func (r *AccountRepository) FindRetailerByOutletCode(ctx context.Context, code string) (*domain.Retailer, error) {
	return one(ctx, r.pool, scanRetailer, `SELECT `+retailerColumns+` FROM retailers WHERE outlet_code = $1`, code)
}

func (r *AccountRepository) ListRetailers(ctx context.Context) ([]domain.Retailer, error) {
	return list(ctx, r.pool, scanRetailer, `SELECT `+retailerColumns+` FROM retailers ORDER BY outlet_code`)
}

func (r *AccountRepository) GetEmployee(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	return one(ctx, r.pool, scanEmployee, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *AccountRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return list(ctx, r.pool, scanEmployee, `SELECT `+employeeColumns+` FROM employees ORDER BY employee_code`)
}

func (r *AccountRepository) GetClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return one(ctx, r.pool, scanClient, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

func (r *AccountRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	return list(ctx, r.pool, scanClient, `SELECT `+clientColumns+` FROM clients ORDER BY organization`)
}
