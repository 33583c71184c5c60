package components

import (
	"ideagate/internal/handler"
	"ideagate/internal/handler/api"
	"ideagate/internal/handler/middleware"
	"ideagate/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAccessHandler,
		api.NewVerificationHandler,
		api.NewWebhookHandler,
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
