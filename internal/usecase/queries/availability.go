package queries

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/availability"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/item"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/clock"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	MonthAvailability(ctx context.Context, itemID uuid.UUID, month calendar.Month) (*AvailabilityView, error)
	// OpenSession starts a date selection against the given months.
	OpenSession(ctx context.Context, itemID uuid.UUID, months ...calendar.Month) (*availability.Session, error)
	// RefreshSession recomputes one month and returns the selected dates
	// that had to be dropped.
	RefreshSession(ctx context.Context, session *availability.Session, month calendar.Month) ([]calendar.Date, error)
}

type availabilityQueriesImpl struct {
	items        ItemReadStore
	reservations ReservationReadStore
	clock        clock.Clock
}

func NewAvailabilityQueries(items ItemReadStore, reservations ReservationReadStore, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		items:        items,
		reservations: reservations,
		clock:        clock,
	}
}

func (q *availabilityQueriesImpl) MonthAvailability(ctx context.Context, itemID uuid.UUID, month calendar.Month) (*AvailabilityView, error) {
	it, view, err := q.monthView(ctx, itemID, month)
	if err != nil {
		return nil, err
	}

	days := view.Days()
	result := &AvailabilityView{
		ItemID:           it.ID(),
		Year:             month.Year(),
		Month:            int(month.Month()),
		PricePerDayCents: it.PricePerDayCents(),
		Days:             make([]DayView, len(days)),
	}
	for i, d := range days {
		result.Days[i] = DayView{Date: d.Date.String(), Classification: string(d.Classification)}
	}
	return result, nil
}

func (q *availabilityQueriesImpl) OpenSession(ctx context.Context, itemID uuid.UUID, months ...calendar.Month) (*availability.Session, error) {
	if len(months) == 0 {
		months = []calendar.Month{calendar.MonthOf(q.today())}
	}

	var session *availability.Session
	for _, m := range months {
		it, view, err := q.monthView(ctx, itemID, m)
		if err != nil {
			return nil, err
		}
		if session == nil {
			session = availability.NewSession(it.ID(), it.PricePerDayCents())
		}
		session.LoadMonth(view)
	}
	return session, nil
}

func (q *availabilityQueriesImpl) RefreshSession(ctx context.Context, session *availability.Session, month calendar.Month) ([]calendar.Date, error) {
	_, view, err := q.monthView(ctx, session.ItemID(), month)
	if err != nil {
		return nil, err
	}
	return session.LoadMonth(view), nil
}

func (q *availabilityQueriesImpl) monthView(ctx context.Context, itemID uuid.UUID, month calendar.Month) (*item.Item, availability.MonthView, error) {
	itemView, err := findItem(ctx, q.items, itemID)
	if err != nil {
		return nil, availability.MonthView{}, err
	}
	it, err := itemView.ToDomain()
	if err != nil {
		return nil, availability.MonthView{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	holding, err := q.reservations.FindHoldingByItem(ctx, itemID)
	if err != nil {
		return nil, availability.MonthView{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	lists := make([][]calendar.Date, 0, len(holding))
	for _, r := range holding {
		dates, err := calendar.ParseDates(r.Dates)
		if err != nil {
			return nil, availability.MonthView{}, errs.Mark(errs.Wrapf(err, "reservation %s", r.ID), errs.ErrDatabaseOperationFailed)
		}
		lists = append(lists, dates)
	}

	booked := availability.BookedWithin(month, lists...)
	return it, availability.Calculate(it.Availability(), booked, q.today(), month), nil
}

func (q *availabilityQueriesImpl) today() calendar.Date {
	return calendar.DateOf(q.clock.Now())
}
