package reservation

import (
	"errors"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"

	"github.com/google/uuid"
)

var ErrMissingRenter = errors.New("renter is required")

type Reservation struct {
	id              uuid.UUID
	itemID          uuid.UUID
	renterID        uuid.UUID
	dates           DateSet
	status          Status
	total           Money
	createdAt       time.Time
	updatedAt       time.Time
	statusChangedAt *time.Time
}

func ReconstructReservation(
	id, itemID, renterID uuid.UUID,
	dates DateSet,
	status Status,
	total Money,
	createdAt, updatedAt time.Time,
	statusChangedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		itemID:          itemID,
		renterID:        renterID,
		dates:           dates,
		status:          status,
		total:           total,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		statusChangedAt: statusChangedAt,
	}
}

// TransitionTo applies one lifecycle edge. On error the reservation is
// left untouched.
func (r *Reservation) TransitionTo(to Status, actorID, ownerID uuid.UUID, now time.Time) error {
	role := ResolveRole(actorID, ownerID, r.renterID)
	if err := CheckTransition(r.status, to, role); err != nil {
		return err
	}
	r.status = to
	r.updatedAt = now
	r.statusChangedAt = &now
	return nil
}

func (r *Reservation) BlocksDate(d calendar.Date) bool {
	return r.status.HoldsDates() && r.dates.Contains(d)
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) ItemID() uuid.UUID           { return r.itemID }
func (r *Reservation) RenterID() uuid.UUID         { return r.renterID }
func (r *Reservation) Dates() DateSet              { return r.dates }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) Total() Money                { return r.total }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
func (r *Reservation) StatusChangedAt() *time.Time { return r.statusChangedAt }
