package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/availability"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/item"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/clock"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/config"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const bookEndpoint = "POST /api/reservations"

const tracerName = "github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/commands"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type BookReservationInput struct {
	ItemID   uuid.UUID
	RenterID uuid.UUID
	Dates    []calendar.Date
	// IdempotencyKey is optional; uuid.Nil disables replay protection.
	IdempotencyKey uuid.UUID
}

type BookReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type BookingCommands interface {
	Book(ctx context.Context, in BookReservationInput) (*BookReservationResult, error)
}

type bookingCommandsImpl struct {
	uow                shared.UnitOfWork
	factory            *reservation.Factory
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	idempotencyTTL     time.Duration
	tracer             trace.Tracer
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	clock clock.Clock,
	cfg config.Config,
	tp trace.TracerProvider,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:                uow,
		factory:            factory,
		reservationQueries: reservationQueries,
		clock:              clock,
		idempotencyTTL:     cfg.Booking.IdempotencyTTL,
		tracer:             tp.Tracer(tracerName),
	}
}

func (c *bookingCommandsImpl) Book(ctx context.Context, in BookReservationInput) (*BookReservationResult, error) {
	ctx, span := c.tracer.Start(ctx, "BookingCommands.Book", trace.WithAttributes(
		attribute.String("item.id", in.ItemID.String()),
		attribute.Int("dates.count", len(in.Dates)),
		attribute.Bool("idempotent", in.IdempotencyKey != uuid.Nil),
	))
	defer span.End()

	result, err := c.book(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking failed")
		return nil, err
	}
	span.SetAttributes(attribute.Bool("replayed", result.IsReplayed))
	return result, nil
}

func (c *bookingCommandsImpl) book(ctx context.Context, in BookReservationInput) (*BookReservationResult, error) {
	if in.RenterID == uuid.Nil {
		return nil, errs.ErrRenterNotAuthenticated
	}
	if len(in.Dates) == 0 {
		return nil, reservation.ErrEmptySelection
	}

	idempotent := in.IdempotencyKey != uuid.Nil
	if idempotent {
		replayed, err := c.claimIdempotencyKey(ctx, in)
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &BookReservationResult{Reservation: replayed, IsReplayed: true}, nil
		}
	}

	reservationID, err := c.createReservation(ctx, in)
	if err != nil {
		if idempotent {
			c.releaseIdempotencyKey(ctx, in.IdempotencyKey, in.RenterID)
		}
		return nil, err
	}

	// Read-after-write: Get the complete reservation view from read store
	view, err := c.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &BookReservationResult{Reservation: view}, nil
}

// createReservation re-checks the item's holding reservations and writes
// the new one in a single serializable transaction. The rent_dates unique
// index backs the check against concurrent bookers.
func (c *bookingCommandsImpl) createReservation(ctx context.Context, in BookReservationInput) (uuid.UUID, error) {
	var created *reservation.Reservation

	err := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := loadItem(ctx, tx.Reads(), in.ItemID)
		if err != nil {
			return err
		}

		res, err := c.factory.CreateReservation(it, in.RenterID, in.Dates)
		if err != nil {
			if errs.Is(err, reservation.ErrMissingRenter) {
				return errs.ErrRenterNotAuthenticated
			}
			return err
		}

		if err := checkConflicts(ctx, tx.Reads(), res); err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return mapCreateErr(err)
		}

		if in.IdempotencyKey != uuid.Nil {
			err := tx.Idempotency().UpdateStatusCompleted(ctx, in.IdempotencyKey, in.RenterID, hashID(res.ID()), res.ID(), c.clock.Now())
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		created = res
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID(), nil
}

// Foreign keys on rents that the booking flow can trip.
const (
	rentsUserFK    = "rents_user_id_fkey"
	rentsProductFK = "rents_product_id_fkey"
)

// mapCreateErr translates a failed rent insert. Members live in the account
// service, so a renter without a local users row is treated as unknown.
func mapCreateErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrDateConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		switch infra.ConstraintName(err) {
		case rentsUserFK:
			return errs.Mark(err, errs.ErrRenterNotAuthenticated)
		case rentsProductFK:
			return errs.Mark(err, errs.ErrItemNotFound)
		}
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func loadItem(ctx context.Context, reads shared.CommandReads, itemID uuid.UUID) (*item.Item, error) {
	snap, err := reads.ItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	weekly, err := calendar.ParseWeekdaySet(snap.Availabilities)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "item %s", snap.ID), errs.ErrDatabaseOperationFailed)
	}
	return item.ReconstructItem(snap.ID, snap.OwnerID, snap.CategoryID, snap.Name, snap.Price, weekly), nil
}

func checkConflicts(ctx context.Context, reads shared.CommandReads, res *reservation.Reservation) error {
	holding, err := reads.HoldingReservationsByItem(ctx, res.ItemID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var taken []calendar.Date
	for _, h := range holding {
		dates, err := calendar.ParseDates(h.Dates)
		if err != nil {
			return errs.Mark(errs.Wrapf(err, "reservation %s", h.ID), errs.ErrDatabaseOperationFailed)
		}
		taken = append(taken, res.Dates().Intersect(dates)...)
	}
	if len(taken) > 0 {
		taken = calendar.SortDates(taken)
		return errs.Wrapf(errs.ErrDateConflict, "dates %s", strings.Join(calendar.DateStrings(taken), ", "))
	}
	return nil
}

// claimIdempotencyKey returns the earlier result when the key was already
// used for the same request, or nil when this call now owns the key.
func (c *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, in BookReservationInput) (*queries.ReservationView, error) {
	requestHash, err := hashRequest(in)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	now := c.clock.Now()
	expiresAt := now.Add(c.idempotencyTTL)

	var existing *shared.IdempotencyRecord
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, in.IdempotencyKey, in.RenterID, bookEndpoint, requestHash, expiresAt)
		if err != nil || inserted {
			return err
		}
		claimed, err := tx.Idempotency().ClaimExpired(ctx, in.IdempotencyKey, in.RenterID, requestHash, now, expiresAt)
		if err != nil || claimed {
			return err
		}
		existing, err = tx.Reads().IdempotencyByKey(ctx, in.IdempotencyKey, in.RenterID)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if existing == nil {
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.Mark(errs.New("completed request missing result reservation ID"), errs.ErrIdempotencyCheckFailed)
		}
		// Use system-level access for idempotency replay
		view, err := c.reservationQueries.GetByIDSystem(ctx, *existing.ResultReservationID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		return view, nil
	case shared.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), errs.ErrIdempotencyCheckFailed)
	}
}

// releaseIdempotencyKey lets the client retry with the same key after a
// failed booking.
func (c *bookingCommandsImpl) releaseIdempotencyKey(ctx context.Context, key, userID uuid.UUID) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Delete(ctx, key, userID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key.String(), "error", err.Error())
	}
}

type requestFingerprint struct {
	ItemID string   `json:"item_id"`
	Dates  []string `json:"dates"`
}

func hashRequest(in BookReservationInput) (string, error) {
	data, err := json.Marshal(requestFingerprint{
		ItemID: in.ItemID.String(),
		Dates:  calendar.DateStrings(calendar.SortDates(in.Dates)),
	})
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func hashID(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}

// SessionBooker adapts Book to the date selection session's confirm step.
func SessionBooker(cmds BookingCommands, renterID uuid.UUID) availability.BookFunc {
	return func(ctx context.Context, itemID uuid.UUID, dates []calendar.Date) error {
		_, err := cmds.Book(ctx, BookReservationInput{ItemID: itemID, RenterID: renterID, Dates: dates})
		return err
	}
}
