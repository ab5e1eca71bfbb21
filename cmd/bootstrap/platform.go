package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/handler/middleware"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra/db"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/config"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/jwt"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/telemetry"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

var TracingModule = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
)

// NewLogger installs the configured handler as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}
	return jwt.NewService(jwt.Options{
		Secret:   cfg.JWT.Secret,
		Duration: duration,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}), nil
}

// NewDB opens the pool at construction so a bad DSN fails fx startup; the
// pool is closed when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database pool ready",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns,
	)
	lc.Append(fx.StopHook(cleanup))
	return pool, nil
}

// NewTracerProvider is also installed as the otel global so that the HTTP
// instrumentation and the use cases share one pipeline. Pending spans are
// flushed when the app stops.
func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (trace.TracerProvider, error) {
	tp, err := telemetry.NewTracerProvider(context.Background(), cfg.Tracing)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	logger.Info("tracer provider ready",
		"service", cfg.Tracing.ServiceName,
		"exporting", cfg.Tracing.Endpoint != "",
		"sample_ratio", cfg.Tracing.SampleRatio,
	)
	lc.Append(fx.StopHook(tp.Shutdown))
	return tp, nil
}
