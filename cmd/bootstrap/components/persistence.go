package components

import (
	"roomcart/internal/infra/db"
	"roomcart/internal/infra/readstore"
	"roomcart/internal/infra/uow"
	"roomcart/internal/usecase/commands"
	"roomcart/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewPlanReadStore,
			fx.As(new(commands.PlanReadStore)),
			fx.As(new(queries.PlanViewStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(commands.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(commands.HotelReadStore)),
			fx.As(new(queries.StorefrontReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
