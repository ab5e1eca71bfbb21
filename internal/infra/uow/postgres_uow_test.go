//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: true},
		{name: "wrapped by repository", err: infra.WrapRepoErr("insert", &pgconn.PgError{Code: pgerrcode.SerializationFailure}), want: true},
		{name: "wrapped with fmt", err: fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgerrcode.SerializationFailure}

	assert.True(t, shouldRetry(retryable, 0, maxRetries))
	assert.True(t, shouldRetry(retryable, maxRetries-1, maxRetries))
	assert.False(t, shouldRetry(retryable, maxRetries, maxRetries))
	assert.False(t, shouldRetry(errors.New("boom"), 0, maxRetries))
}

func TestCalculateBackoff(t *testing.T) {
	base := 50 * time.Millisecond
	for attempt := 0; attempt < maxRetries; attempt++ {
		want := time.Duration(1<<attempt) * base
		for i := 0; i < 20; i++ {
			got := calculateBackoff(attempt, base)
			assert.GreaterOrEqual(t, got, want)
			assert.Less(t, got, want+want/5+time.Nanosecond)
		}
	}
	assert.Zero(t, cryptoRandInt63n(0))
}
