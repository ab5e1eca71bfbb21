package availability

import (
	"context"

	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/calendar"
	"github.com/pedrovictoriano/circula-bem-sub000/internal/domain/reservation"

	"github.com/google/uuid"
)

// RejectUnknownDate is reported for dates outside every loaded month.
const RejectUnknownDate Classification = "unknown_date"

type ToggleResult struct {
	Accepted bool
	// Selected is the membership of the date after the toggle.
	Selected bool
	// Reason is set when the toggle was rejected.
	Reason Classification
}

// BookFunc receives the confirmed, ascending selection.
type BookFunc func(ctx context.Context, itemID uuid.UUID, dates []calendar.Date) error

// Session is one renter's working selection against one item. It is not
// safe for concurrent use and holds nothing worth persisting.
type Session struct {
	itemID           uuid.UUID
	pricePerDayCents int64
	views            map[calendar.Month]MonthView
	selected         map[calendar.Date]struct{}
}

func NewSession(itemID uuid.UUID, pricePerDayCents int64) *Session {
	return &Session{
		itemID:           itemID,
		pricePerDayCents: pricePerDayCents,
		views:            make(map[calendar.Month]MonthView),
		selected:         make(map[calendar.Date]struct{}),
	}
}

func (s *Session) ItemID() uuid.UUID {
	return s.itemID
}

// LoadMonth installs a freshly computed view. Selected dates of that month
// which are no longer selectable are dropped and returned.
func (s *Session) LoadMonth(view MonthView) []calendar.Date {
	s.views[view.Month()] = view
	var dropped []calendar.Date
	for d := range s.selected {
		if !view.Month().Contains(d) {
			continue
		}
		if c, _ := view.Classify(d); !c.IsSelectable() {
			delete(s.selected, d)
			dropped = append(dropped, d)
		}
	}
	return calendar.SortDates(dropped)
}

func (s *Session) Toggle(d calendar.Date) ToggleResult {
	view, ok := s.views[calendar.MonthOf(d)]
	if !ok {
		return ToggleResult{Selected: s.IsSelected(d), Reason: RejectUnknownDate}
	}
	c, ok := view.Classify(d)
	if !ok {
		return ToggleResult{Selected: s.IsSelected(d), Reason: RejectUnknownDate}
	}
	if !c.IsSelectable() {
		return ToggleResult{Selected: s.IsSelected(d), Reason: c}
	}

	if _, present := s.selected[d]; present {
		delete(s.selected, d)
		return ToggleResult{Accepted: true, Selected: false}
	}
	s.selected[d] = struct{}{}
	return ToggleResult{Accepted: true, Selected: true}
}

func (s *Session) IsSelected(d calendar.Date) bool {
	_, ok := s.selected[d]
	return ok
}

func (s *Session) Selected() []calendar.Date {
	out := make([]calendar.Date, 0, len(s.selected))
	for d := range s.selected {
		out = append(out, d)
	}
	return calendar.SortDates(out)
}

// Total is the running price in integer cents.
func (s *Session) Total() int64 {
	return s.pricePerDayCents * int64(len(s.selected))
}

// Confirm hands the selection to book. The selection is kept on failure
// so the renter can adjust and retry, and cleared on success.
func (s *Session) Confirm(ctx context.Context, book BookFunc) error {
	if len(s.selected) == 0 {
		return reservation.ErrEmptySelection
	}
	if err := book(ctx, s.itemID, s.Selected()); err != nil {
		return err
	}
	s.Clear()
	return nil
}

func (s *Session) Clear() {
	s.selected = make(map[calendar.Date]struct{})
}
