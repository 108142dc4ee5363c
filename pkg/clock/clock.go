package clock

import (
	"time"

	"github.com/julien-sobczak/emotion-dashboard/pkg/resync"
)

var (
	// Lazy-load
	clockOnce      resync.Once
	clockSingleton Clock
)

// Clock tells the wall-clock time. The dashboard stamps every state change with it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the time from the OS.
type SystemClock struct{}

func (c SystemClock) Now() time.Time {
	return time.Now()
}

// FrozenClock always returns the same instant until moved forward explicitly.
type FrozenClock struct {
	now time.Time
}

func NewFrozenClockAt(date time.Time) *FrozenClock {
	return &FrozenClock{
		now: date,
	}
}

// FastForward moves the frozen time and returns the new instant.
func (c *FrozenClock) FastForward(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func (c *FrozenClock) Now() time.Time {
	return c.now
}

func CurrentClock() Clock {
	if clockSingleton != nil {
		return clockSingleton
	}
	clockOnce.Do(func() {
		clockSingleton = SystemClock{}
	})
	return clockSingleton
}

// Now is time.Now() but can be controlled from unit tests.
func Now() time.Time {
	return CurrentClock().Now()
}

// FreezeAt stops the time at the given instant until Unfreeze is called.
func FreezeAt(now time.Time) *FrozenClock {
	frozen := NewFrozenClockAt(now)
	clockSingleton = frozen
	return frozen
}

// Freeze stops the time at the current instant.
func Freeze() *FrozenClock {
	return FreezeAt(time.Now())
}

func Unfreeze() {
	clockSingleton = nil
	clockOnce.Reset()
}
