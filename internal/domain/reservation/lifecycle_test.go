//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTransition(t *testing.T) {
	const (
		owner    = reservation.RoleOwner
		renter   = reservation.RoleRenter
		stranger = reservation.RoleStranger
	)

	testCases := []struct {
		name  string
		from  reservation.Status
		to    reservation.Status
		role  reservation.Role
		errIs error
	}{
		{name: "owner confirms pending", from: reservation.StatusPending, to: reservation.StatusConfirmed, role: owner},
		{name: "owner cancels pending", from: reservation.StatusPending, to: reservation.StatusCancelled, role: owner},
		{name: "renter cancels pending", from: reservation.StatusPending, to: reservation.StatusCancelled, role: renter},
		{name: "owner starts confirmed", from: reservation.StatusConfirmed, to: reservation.StatusInProgress, role: owner},
		{name: "owner cancels confirmed", from: reservation.StatusConfirmed, to: reservation.StatusCancelled, role: owner},
		{name: "owner completes in progress", from: reservation.StatusInProgress, to: reservation.StatusCompleted, role: owner},

		{name: "renter confirms", from: reservation.StatusPending, to: reservation.StatusConfirmed, role: renter, errIs: reservation.ErrNotAuthorized},
		{name: "renter cancels confirmed", from: reservation.StatusConfirmed, to: reservation.StatusCancelled, role: renter, errIs: reservation.ErrNotAuthorized},
		{name: "renter completes", from: reservation.StatusInProgress, to: reservation.StatusCompleted, role: renter, errIs: reservation.ErrNotAuthorized},
		{name: "stranger on valid edge", from: reservation.StatusPending, to: reservation.StatusConfirmed, role: stranger, errIs: reservation.ErrNotAuthorized},
		{name: "stranger on invalid edge", from: reservation.StatusCompleted, to: reservation.StatusPending, role: stranger, errIs: reservation.ErrNotAuthorized},

		{name: "back to pending", from: reservation.StatusConfirmed, to: reservation.StatusPending, role: owner, errIs: reservation.ErrInvalidTransition},
		{name: "skip confirmation", from: reservation.StatusPending, to: reservation.StatusInProgress, role: owner, errIs: reservation.ErrInvalidTransition},
		{name: "cancel in progress", from: reservation.StatusInProgress, to: reservation.StatusCancelled, role: owner, errIs: reservation.ErrInvalidTransition},
		{name: "leave completed", from: reservation.StatusCompleted, to: reservation.StatusCancelled, role: owner, errIs: reservation.ErrInvalidTransition},
		{name: "leave cancelled", from: reservation.StatusCancelled, to: reservation.StatusConfirmed, role: owner, errIs: reservation.ErrInvalidTransition},
		{name: "same status", from: reservation.StatusPending, to: reservation.StatusPending, role: owner, errIs: reservation.ErrInvalidTransition},
		{name: "renter on invalid edge", from: reservation.StatusCompleted, to: reservation.StatusCancelled, role: renter, errIs: reservation.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := reservation.CheckTransition(tc.from, tc.to, tc.role)
			if tc.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
		})
	}

	t.Run("invalid transition names both ends", func(t *testing.T) {
		err := reservation.CheckTransition(reservation.StatusCompleted, reservation.StatusPending, owner)
		var target *reservation.InvalidTransitionError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, reservation.StatusCompleted, target.From)
		assert.Equal(t, reservation.StatusPending, target.To)
	})

	t.Run("no edge ever returns to pending", func(t *testing.T) {
		for _, from := range reservation.AllStatuses() {
			for _, role := range []reservation.Role{owner, renter} {
				assert.NotContains(t, reservation.AllowedTargets(from, role), reservation.StatusPending)
			}
		}
	})

	t.Run("terminal statuses have no exits", func(t *testing.T) {
		for _, from := range []reservation.Status{reservation.StatusCompleted, reservation.StatusCancelled} {
			assert.Empty(t, reservation.AllowedTargets(from, owner))
		}
	})
}

func TestResolveRole(t *testing.T) {
	ownerID, renterID := uuid.New(), uuid.New()

	assert.Equal(t, reservation.RoleOwner, reservation.ResolveRole(ownerID, ownerID, renterID))
	assert.Equal(t, reservation.RoleRenter, reservation.ResolveRole(renterID, ownerID, renterID))
	assert.Equal(t, reservation.RoleStranger, reservation.ResolveRole(uuid.New(), ownerID, renterID))
	assert.Equal(t, reservation.RoleStranger, reservation.ResolveRole(uuid.Nil, ownerID, renterID))
	assert.Equal(t, reservation.RoleOwner, reservation.ResolveRole(ownerID, ownerID, ownerID))
}

func TestReservation_TransitionTo(t *testing.T) {
	now := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC)

	t.Run("owner confirms", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildDomain()

		require.NoError(t, r.TransitionTo(reservation.StatusConfirmed, b.OwnerID, b.OwnerID, now))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, now, r.UpdatedAt())
		require.NotNil(t, r.StatusChangedAt())
		assert.Equal(t, now, *r.StatusChangedAt())
	})

	t.Run("renter cannot confirm and status stays pending", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildDomain()

		err := r.TransitionTo(reservation.StatusConfirmed, b.RenterID, b.OwnerID, now)
		require.ErrorIs(t, err, reservation.ErrNotAuthorized)
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Nil(t, r.StatusChangedAt())
		assert.Equal(t, b.UpdatedAt, r.UpdatedAt())
	})

	t.Run("total is never recomputed", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildDomain()
		require.NoError(t, r.TransitionTo(reservation.StatusConfirmed, b.OwnerID, b.OwnerID, now))
		require.NoError(t, r.TransitionTo(reservation.StatusInProgress, b.OwnerID, b.OwnerID, now))
		require.NoError(t, r.TransitionTo(reservation.StatusCompleted, b.OwnerID, b.OwnerID, now))
		assert.Equal(t, b.TotalAmount, r.Total().Cents())
	})

	t.Run("cancelled reservation releases its dates", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r := b.BuildDomain()
		d := r.Dates().Dates()[0]
		assert.True(t, r.BlocksDate(d))

		require.NoError(t, r.TransitionTo(reservation.StatusCancelled, b.RenterID, b.OwnerID, now))
		assert.False(t, r.BlocksDate(d))
	})
}

func TestStatus(t *testing.T) {
	for _, s := range reservation.AllStatuses() {
		parsed, err := reservation.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := reservation.ParseStatus("archived")
	assert.ErrorIs(t, err, reservation.ErrUnknownStatus)

	assert.True(t, reservation.StatusConfirmed.IsActive())
	assert.True(t, reservation.StatusInProgress.IsActive())
	assert.False(t, reservation.StatusPending.IsActive())
	assert.True(t, reservation.StatusPending.HoldsDates())
	assert.True(t, reservation.StatusCompleted.HoldsDates())
	assert.False(t, reservation.StatusCancelled.HoldsDates())
	assert.False(t, reservation.Status("archived").HoldsDates())
}
