package components

import (
	"ideagate/internal/infra/readstore"
	"ideagate/internal/infra/repository"
	"ideagate/internal/usecase/commands"
	"ideagate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewAccessRequestRepository,
			fx.As(new(commands.AccessRequestRepository)),
		),
		fx.Annotate(
			repository.NewVerificationRepository,
			fx.As(new(commands.VerificationRepository)),
		),
		fx.Annotate(
			readstore.NewAccessStateReadStore,
			fx.As(new(queries.AccessStateReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
