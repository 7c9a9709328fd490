package components

import (
	"itemshare/internal/handler"
	"itemshare/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewItemRequestHandler,
	),
	fx.Invoke(handler.NewRouter),
)
