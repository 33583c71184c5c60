package components

import (
	"ideagate/internal/infra/checkout"
	"ideagate/internal/infra/notify"
	"ideagate/internal/pkg/clock"
	"ideagate/internal/pkg/config"
	"ideagate/internal/pkg/webhooksig"
	"ideagate/internal/usecase/commands"
	"ideagate/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		notify.NewSlogNotifier,
		fx.As(new(commands.Notifier)),
	),
	fx.Annotate(
		NewCheckoutClient,
		fx.As(new(commands.CheckoutProvider)),
	),
	fx.Annotate(
		NewSignatureVerifier,
		fx.As(new(commands.SignatureVerifier)),
	),
)

func NewCheckoutClient(cfg config.Config) *checkout.Client {
	return checkout.NewClient(cfg.Payment)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccessUseCase,
		commands.NewPaymentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccessQueries,
	),
)

func NewSignatureVerifier(cfg config.Config) *webhooksig.Verifier {
	return webhooksig.NewVerifier(cfg.Payment.WebhookSecret, cfg.Payment.SignatureTolerance)
}
