package components

import (
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/usecase"
	"hotelhub/internal/usecase/commands"
	"hotelhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
	),
	queryModule,
	commandModule,
)

var queryModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPackageQueries,
		queries.NewRoomTypeQueries,
		queries.NewBookingQueries,
		queries.NewDiscountQueries,
		queries.NewFeedbackQueries,
	),
)

var commandModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPackageCommands,
		commands.NewRoomTypeCommands,
		commands.NewBookingCommands,
		commands.NewDiscountCommands,
		commands.NewFeedbackCommands,
	),
)
