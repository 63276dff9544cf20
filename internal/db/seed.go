package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded demo account.
const DemoPassword = "demo-pass-123"

// Seed inserts a demo client with one campaign, an employee and three
// retailers, all assigned and linked. It does nothing when campaigns
// already exist and reports whether data was inserted.
func Seed(ctx context.Context, pool *pgxpool.Pool) (bool, error) {
	var n int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n); err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		now := time.Now().UTC()

		clientID := uuid.New()
		if _, err := tx.Exec(ctx, `INSERT INTO clients (id, organization, contact_name, email, created_at)
VALUES ($1, 'Acme Beverages', 'Priya Nair', 'client@demo.local', $2)`, clientID, now); err != nil {
			return err
		}
		if err := insertUser(ctx, tx, "Priya Nair", "client@demo.local", "client", clientID, hash, now); err != nil {
			return err
		}

		campaignID := uuid.New()
		if _, err := tx.Exec(ctx, `INSERT INTO campaigns
    (id, client_id, name, type, description, states, start_date, end_date, status, created_at, updated_at)
VALUES ($1, $2, 'Summer Cooler', 'window_display', 'Cooler branding at partner outlets', $3, $4, $5, 'active', $6, $6)`,
			campaignID, clientID, []string{"Maharashtra", "Gujarat"}, now.AddDate(0, 0, -7), now.AddDate(0, 2, 0), now); err != nil {
			return err
		}

		employeeID := uuid.New()
		if _, err := tx.Exec(ctx, `INSERT INTO employees (id, employee_code, name, city, state, phone, email, created_at)
VALUES ($1, 'EMP-001', 'Ravi Kumar', 'Pune', 'Maharashtra', '9800000001', 'employee@demo.local', $2)`, employeeID, now); err != nil {
			return err
		}
		if err := insertUser(ctx, tx, "Ravi Kumar", "employee@demo.local", "employee", employeeID, hash, now); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO campaign_employees (campaign_id, employee_id, status, assigned_at)
VALUES ($1, $2, 'accepted', $3)`, campaignID, employeeID, now); err != nil {
			return err
		}

		for i := 1; i <= 3; i++ {
			retailerID := uuid.New()
			code := fmt.Sprintf("OUT-%03d", i)
			email := fmt.Sprintf("retailer%d@demo.local", i)
			if _, err := tx.Exec(ctx, `INSERT INTO retailers
    (id, outlet_code, shop_name, owner_name, city, state, phone, email, created_at)
VALUES ($1, $2, $3, $4, 'Pune', 'Maharashtra', $5, $6, $7)`,
				retailerID, code, fmt.Sprintf("Demo Store %d", i), fmt.Sprintf("Owner %d", i),
				fmt.Sprintf("98100000%02d", i), email, now); err != nil {
				return err
			}
			if err := insertUser(ctx, tx, fmt.Sprintf("Owner %d", i), email, "retailer", retailerID, hash, now); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO campaign_retailers (campaign_id, retailer_id, status, assigned_at)
VALUES ($1, $2, 'pending', $3)`, campaignID, retailerID, now); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO employee_retailer_links (campaign_id, employee_id, retailer_id)
VALUES ($1, $2, $3)`, campaignID, employeeID, retailerID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func insertUser(ctx context.Context, tx pgx.Tx, name, email, role string, profileID uuid.UUID, hash []byte, now time.Time) error {
	_, err := tx.Exec(ctx, `INSERT INTO users (id, name, email, phone, password_hash, role, profile_id, created_at)
VALUES ($1, $2, $3, '', $4, $5, $6, $7) ON CONFLICT (email) DO NOTHING`,
		uuid.New(), name, email, string(hash), role, profileID, now)
	return err
}
