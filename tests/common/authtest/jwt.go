//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/config"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints access tokens the way the account service would, signed
// with the test config's secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, memberID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, memberID, duration)
}

// CreateExpiredToken returns a token that expired well outside the
// verifier's clock skew allowance.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, memberID uuid.UUID) string {
	t.Helper()
	return h.sign(t, memberID, -5*time.Minute)
}

func (h *JWTHelper) sign(t *testing.T, memberID uuid.UUID, d time.Duration) string {
	t.Helper()
	token, err := jwt.NewService(jwt.Options{
		Secret:   h.cfg.Secret,
		Duration: d,
		Issuer:   h.cfg.Issuer,
		Audience: h.cfg.Audience,
	}).GenerateToken(memberID)
	require.NoError(t, err)
	return token
}
