// Package clock supplies the scheduler's time abstraction: an opaque
// absolute instant, a relative offset, and a "now" reader that can be
// swapped for a deterministic test double.
//
// This mirrors joeycumines-go-utilpkg's eventloop and its injectable time
// (its tickAnchor / tickElapsedTime pair plus test hooks for
// deterministic race testing), generalized into a small standalone
// package so both the scheduler and its tests depend on the same Func
// type.
package clock

import "time"

// Abs is an opaque absolute instant.
type Abs struct {
	t time.Time
}

// Rel is an opaque relative duration.
type Rel struct {
	d time.Duration
}

// Milliseconds builds a Rel from a millisecond count.
func Milliseconds(ms int64) Rel {
	return Rel{d: time.Duration(ms) * time.Millisecond}
}

// Duration builds a Rel directly from a time.Duration.
func Duration(d time.Duration) Rel {
	return Rel{d: d}
}

// FromTime wraps a time.Time as an Abs, for host code bridging to the
// standard library.
func FromTime(t time.Time) Abs {
	return Abs{t: t}
}

// Time unwraps an Abs back to a time.Time.
func (a Abs) Time() time.Time {
	return a.t
}

// Offset returns a ⊕ r.
func (a Abs) Offset(r Rel) Abs {
	return Abs{t: a.t.Add(r.d)}
}

// IsBefore reports whether a is strictly before b.
func (a Abs) IsBefore(b Abs) bool {
	return a.t.Before(b.t)
}

// IsAfter reports whether a is strictly after b.
func (a Abs) IsAfter(b Abs) bool {
	return a.t.After(b.t)
}

// Equal reports whether a and b denote the same instant.
func (a Abs) Equal(b Abs) bool {
	return a.t.Equal(b.t)
}

// Func returns the current absolute time. The scheduler calls this on
// every step to sample "now" for event promotion; overriding it with a
// test double makes time-dependent dispatch scenarios deterministic.
type Func func() Abs

// System is the platform default: wall-clock time via time.Now.
func System() Abs {
	return Abs{t: time.Now()}
}

// Manual is a test double that reports whatever time was last Set, never
// advancing on its own. Safe for use as a Func via m.Now.
type Manual struct {
	now Abs
}

// NewManual returns a Manual clock pinned to t0.
func NewManual(t0 Abs) *Manual {
	return &Manual{now: t0}
}

// Now implements Func.
func (m *Manual) Now() Abs {
	return m.now
}

// Set pins the clock to t.
func (m *Manual) Set(t Abs) {
	m.now = t
}

// Advance moves the clock forward by r.
func (m *Manual) Advance(r Rel) {
	m.now = m.now.Offset(r)
}
