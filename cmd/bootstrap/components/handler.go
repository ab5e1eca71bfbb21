package components

import (
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/api"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/dto/request"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewStatsHandler,
		middleware.NewAuthMiddleware,
		func(a *api.AvailabilityHandler, r *api.ReservationHandler, s *api.StatsHandler) handler.Handlers {
			return handler.Handlers{Availability: a, Reservation: r, Stats: s}
		},
	),
	fx.Invoke(
		request.RegisterValidators,
		handler.NewRouter,
	),
)
