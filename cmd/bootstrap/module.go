package bootstrap

import (
	"log/slog"

	"github.com/pedrovictoriano/circula-bem-sub000/cmd/bootstrap/components"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module is the whole server graph. fx lifecycle events go through the
// application logger.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	TracingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: logger}
	}),
)
