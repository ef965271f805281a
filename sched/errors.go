package sched

import "errors"

// Sentinel errors covering the taxonomy of failures a Scheduler can
// report. Every submission method returns one of these (wrapped or bare)
// rather than panicking; callers compare with errors.Is.
var (
	// ErrNotInitialized is returned by submission methods when the
	// Scheduler failed construction or was never constructed via New.
	ErrNotInitialized = errors.New("sched: scheduler not initialized")

	// ErrMissingCollaborator is returned by New when one of the four
	// required external containers is nil.
	ErrMissingCollaborator = errors.New("sched: a required collaborator is nil")

	// ErrInvalidTask is returned by a submission method given a nil task.
	ErrInvalidTask = errors.New("sched: task must not be nil")

	// ErrQueueFull is returned when the target bounded queue has no room.
	ErrQueueFull = errors.New("sched: queue is full")

	// ErrPoolExhausted is returned by SubmitAt/SubmitIn when the event
	// pool has no free blocks left to allocate a wrapper from.
	ErrPoolExhausted = errors.New("sched: event pool exhausted")
)
