package clock

import (
	"sync"
	"time"
)

// Clock is the time source for everything that derives "today" or stamps
// a status change.
type Clock interface {
	Now() time.Time
}

type zonedClock struct {
	loc *time.Location
}

// NewZonedClock reports wall time in loc (UTC when nil), so calendar dates
// taken from Now() follow the marketplace's business zone.
func NewZonedClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return zonedClock{loc: loc}
}

func (c zonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock is a settable clock for tests. It is safe for concurrent use.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
