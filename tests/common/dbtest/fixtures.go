//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// GetPlanID looks up a seeded plan by name.
func GetPlanID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var planID uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM plans WHERE name = $1 LIMIT 1", name).Scan(&planID)
	require.NoError(t, err)
	return planID
}

func CreateTestPlan(t *testing.T, db DBLike, name string, price decimal.Decimal, durationDays int32) uuid.UUID {
	t.Helper()

	planID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO plans (id, name, description, price, duration_days) VALUES ($1, $2, '', $3, $4)",
		planID, name, price, durationDays)
	require.NoError(t, err)
	return planID
}

func CreateTestCoupon(t *testing.T, db DBLike, code, kind string, value decimal.Decimal, isActive bool, expiresAt *time.Time) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO coupons (id, code, kind, value, is_active, expires_at) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (code) DO NOTHING",
		couponID, code, kind, value, isActive, expiresAt)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM coupons WHERE code = $1", code).Scan(&couponID)
	}

	return couponID
}

// inserts the reference data every e2e flow depends on: the purchasable
// plan tiers plus one live discount code.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO plans (name, description, price, duration_days, product_limit, features)
		SELECT v.name, v.description, v.price, v.duration_days, v.product_limit, v.features
		FROM (VALUES
		    ('Starter', 'Free trial tier', 0.00::numeric, 14, 10, ARRAY['qr_ordering']),
		    ('Growth', 'Standard tier', 49.00::numeric, 30, 50, ARRAY['qr_ordering', 'custom_branding']),
		    ('Scale', 'High-volume tier', 99.00::numeric, 30, 200, ARRAY['qr_ordering', 'custom_branding', 'priority_support'])
		) AS v(name, description, price, duration_days, product_limit, features)
		WHERE NOT EXISTS (SELECT 1 FROM plans WHERE plans.name = v.name);
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO coupons (code, kind, value, is_active)
		VALUES ('SAVE20', 'percentage', 20.00, TRUE)
		ON CONFLICT (code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
