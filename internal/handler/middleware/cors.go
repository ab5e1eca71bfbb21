package middleware

import (
	"log/slog"
	"slices"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy from config. Idempotency-Key is
// always accepted and X-Request-ID always exposed so browser clients can
// retry bookings and correlate failures. A lone "*" origin switches to
// allow-all, which cannot be combined with credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     slices.Clone(cfg.AllowHeaders),
		ExposeHeaders:    slices.Clone(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if !slices.Contains(corsCfg.AllowHeaders, idempotencyKeyHeader) {
		corsCfg.AddAllowHeaders(idempotencyKeyHeader)
	}
	if !slices.Contains(corsCfg.ExposeHeaders, requestIDHeader) {
		corsCfg.AddExposeHeaders(requestIDHeader)
	}

	slog.Info("cors policy loaded",
		"allow_all", corsCfg.AllowAllOrigins,
		"origins", corsCfg.AllowOrigins,
		"credentials", corsCfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}
