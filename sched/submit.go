package sched

import (
	"github.com/mu-tools/mu-sched/clock"
	"github.com/mu-tools/mu-sched/sortedvec"
	"github.com/mu-tools/mu-sched/task"
)

// SubmitASAP pushes t onto the asap queue, to run as soon as the
// dispatch engine reaches it in priority order. Safe to call from
// within another task's invocation.
func (s *Scheduler) SubmitASAP(t task.Task) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if t == nil {
		return ErrInvalidTask
	}
	if !s.asapQueue.Put(t) {
		s.log().QueueFull("asap")
		return ErrQueueFull
	}
	return nil
}

// SubmitAt schedules t to become runnable at or after deadline. Safe to
// call from within another task's invocation.
func (s *Scheduler) SubmitAt(t task.Task, deadline clock.Abs) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if t == nil {
		return ErrInvalidTask
	}

	evt := s.eventPool.Alloc()
	if evt == nil {
		s.log().PoolExhausted()
		return ErrPoolExhausted
	}
	evt.Task = t
	evt.Deadline = deadline

	if !s.eventQueue.SortedInsert(evt, compareEvents, sortedvec.InsertFirst) {
		s.eventPool.Free(evt)
		s.log().QueueFull("event")
		return ErrQueueFull
	}
	return nil
}

// SubmitIn schedules t to become runnable after delay has elapsed,
// measured from the scheduler's current time source. Safe to call from
// within another task's invocation.
func (s *Scheduler) SubmitIn(t task.Task, delay clock.Rel) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if t == nil {
		return ErrInvalidTask
	}
	now := s.getTime()
	return s.SubmitAt(t, now.Offset(delay))
}

// SubmitFromInterrupt pushes t onto the lock-free interrupt queue. This
// is the only Scheduler method safe to call from interrupt/ISR context;
// the caller must ensure t's storage remains valid after the interrupt
// returns (static or otherwise interrupt-persistent memory — the
// scheduler cannot enforce this).
func (s *Scheduler) SubmitFromInterrupt(t task.Task) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if t == nil {
		return ErrInvalidTask
	}
	if !s.interruptQueue.Put(t) {
		return ErrQueueFull
	}
	return nil
}
