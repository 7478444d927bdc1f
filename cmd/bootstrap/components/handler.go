package components

import (
	"stayfront/internal/handler"
	"stayfront/internal/handler/api"
	"stayfront/internal/handler/web"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPropertyHandler,
		api.NewBookingHandler,
		web.NewTemplateCache,
		web.NewPropertyPages,
	),
	fx.Invoke(handler.NewRouter),
)
