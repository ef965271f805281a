package sched

import (
	"github.com/mu-tools/mu-sched/clock"
	"github.com/mu-tools/mu-sched/task"
)

// HasRunnableTask reports whether the asap queue is non-empty. It
// deliberately does not inspect the interrupt queue (there is no
// ISR-safe non-destructive predicate to check it with — an interrupt
// could race any check) nor the event queue (a pending future event is
// not runnable yet). Intended use: deciding whether a host loop may
// enter a low-power sleep before the next Step.
func (s *Scheduler) HasRunnableTask() bool {
	if !s.initialized {
		return false
	}
	return s.asapQueue.Len() > 0
}

// CurrentTask returns the task presently being invoked by Step, or nil
// if Step is not currently on the call stack. Intended for use by a
// task that wants to detect the recursion guard's trigger condition
// before calling Step itself.
func (s *Scheduler) CurrentTask() task.Task {
	return s.currentTask
}

// SetIdleTask replaces the task invoked when nothing else is runnable.
// A nil argument disables idle dispatch. No-ops if the Scheduler is not
// initialized.
func (s *Scheduler) SetIdleTask(t task.Task) {
	if !s.initialized {
		return
	}
	s.idleTask = t
}

// SetTimeFunction replaces the time source used to decide which events
// are due. A nil fn restores the platform default. No-ops if the
// Scheduler is not initialized.
func (s *Scheduler) SetTimeFunction(fn clock.Func) {
	if !s.initialized {
		return
	}
	if fn == nil {
		fn = clock.System
	}
	s.getTime = fn
}
