package components

import (
	"hotelhub/internal/infra/readstore"
	"hotelhub/internal/infra/repository"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewRoomTypeRepository,
			fx.As(new(commands.RoomTypeRepository)),
		),
		fx.Annotate(
			repository.NewPackageRepository,
			fx.As(new(commands.PackageRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewDiscountRepository,
			fx.As(new(commands.DiscountRepository)),
		),
		fx.Annotate(
			repository.NewFeedbackRepository,
			fx.As(new(commands.FeedbackRepository)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewPackageReadStore,
			fx.As(new(queries.PackageReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingCountStore)),
		),
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(queries.DiscountReadStore)),
		),
		fx.Annotate(
			readstore.NewFeedbackReadStore,
			fx.As(new(queries.FeedbackReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomTypeReadStore,
			fx.As(new(queries.RoomTypeReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
