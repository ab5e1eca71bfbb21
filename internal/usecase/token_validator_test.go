//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/jwt"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService(jwt.Options{Secret: "s3cret", Duration: time.Hour, Audience: "authenticated"})
	validator := usecase.NewTokenValidator(svc)
	memberID := uuid.New()

	token, err := svc.GenerateToken(memberID)
	require.NoError(t, err)

	got, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, memberID, got)

	got, err = validator.ValidateToken(token + "x")
	assert.Equal(t, uuid.Nil, got)
	assert.True(t, errs.Is(err, errs.ErrRenterNotAuthenticated))
	assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
}
