package readstore

import (
	"context"
	"strings"

	"roomcart/internal/infra"
	"roomcart/internal/infra/db"
	"roomcart/internal/pkg/pgconv"
	"roomcart/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const findCouponByCodeSQL = `
SELECT id, code, kind, value, is_active, expires_at
FROM coupons
WHERE code = $1`

func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*commands.CouponSnapshot, error) {
	var (
		snap      commands.CouponSnapshot
		expiresAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findCouponByCodeSQL, strings.ToUpper(strings.TrimSpace(code))).Scan(
		&snap.ID,
		&snap.Code,
		&snap.Kind,
		&snap.Value,
		&snap.IsActive,
		&expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	snap.ExpiresAt = pgconv.TimePtrFromPgtype(expiresAt)
	return &snap, nil
}
