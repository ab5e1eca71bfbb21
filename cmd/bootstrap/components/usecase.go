package components

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/clock"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/config"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/commands"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewBusinessClock,
	fx.Annotate(
		reservation.NewDailyRateCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewLifecycleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewBusinessClock reports time in the marketplace zone so that "today"
// matches what renters see on their calendar.
func NewBusinessClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewZonedClock(loc), nil
}
