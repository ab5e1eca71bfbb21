package commands

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/infra"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/clock"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/queries"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type TransitionInput struct {
	ReservationID uuid.UUID
	ActorID       uuid.UUID
	To            reservation.Status
}

type LifecycleCommands interface {
	Transition(ctx context.Context, in TransitionInput) (*queries.ReservationView, error)
}

type lifecycleCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	tracer             trace.Tracer
}

func NewLifecycleCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clock clock.Clock,
	tp trace.TracerProvider,
) LifecycleCommands {
	return &lifecycleCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clock,
		tracer:             tp.Tracer(tracerName),
	}
}

func (c *lifecycleCommandsImpl) Transition(ctx context.Context, in TransitionInput) (*queries.ReservationView, error) {
	ctx, span := c.tracer.Start(ctx, "LifecycleCommands.Transition", trace.WithAttributes(
		attribute.String("reservation.id", in.ReservationID.String()),
		attribute.String("status.to", in.To.String()),
	))
	defer span.End()

	if in.ActorID == uuid.Nil {
		return nil, errs.ErrRenterNotAuthenticated
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record, err := tx.Reservations().LockByID(ctx, in.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		snap, err := tx.Reads().ItemByID(ctx, record.ItemID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		res, err := recordToDomain(record)
		if err != nil {
			return err
		}
		// an unknown target has no edge, so it is reported against the current status
		from := res.Status()
		if err := res.TransitionTo(in.To, in.ActorID, snap.OwnerID, c.clock.Now()); err != nil {
			return err
		}

		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), from, res.Status(), *res.StatusChangedAt()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !res.Status().HoldsDates() {
			if err := tx.Reservations().ReleaseDates(ctx, res.ID()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transition failed")
		return nil, err
	}

	view, err := c.reservationQueries.GetByIDSystem(ctx, in.ReservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func recordToDomain(r *shared.ReservationRecord) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(r.Status)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "reservation %s", r.ID), errs.ErrDatabaseOperationFailed)
	}
	dates, err := calendar.ParseDates(r.Dates)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "reservation %s", r.ID), errs.ErrDatabaseOperationFailed)
	}
	set, err := reservation.NewDateSet(dates)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "reservation %s", r.ID), errs.ErrDatabaseOperationFailed)
	}
	total, err := reservation.NewMoney(r.TotalAmount)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "reservation %s", r.ID), errs.ErrDatabaseOperationFailed)
	}
	return reservation.ReconstructReservation(
		r.ID, r.ItemID, r.RenterID, set, status, total, r.CreatedAt, r.UpdatedAt, r.StatusChangedAt,
	), nil
}
