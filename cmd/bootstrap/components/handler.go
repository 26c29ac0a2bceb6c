package components

import (
	"roomcart/internal/handler"
	"roomcart/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewPlanHandler,
		api.NewStorefrontHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
