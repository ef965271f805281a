package sched

import (
	"fmt"

	"github.com/mu-tools/mu-sched/task"
)

// Step performs one scheduling pass, invoking at most one task. Grounded
// directly on the dispatch order mu_sched_step documents and tests: an
// initialization gate, a recursion guard, then interrupt queue, event
// promotion, asap queue, and finally the idle hook, in strict priority
// order — each step returns the instant it has run (or declined to run)
// one task.
func (s *Scheduler) Step() {
	if !s.initialized {
		return
	}

	// Recursion guard: a task that calls Step on its own scheduler sees
	// this and returns immediately without dispatching. The outer Step
	// that is still inside that task's Invoke completes normally once
	// the task itself returns.
	if s.currentTask != nil {
		return
	}

	// Priority 1: interrupt queue. Only one item is drained per Step,
	// and it short-circuits everything else.
	if t, ok := s.interruptQueue.Get(); ok {
		s.invoke(t, "interrupt")
		return
	}

	// Priority 2: promote due events into the asap queue.
	s.promoteDueEvents()

	// Priority 3: asap queue.
	if t, ok := s.asapQueue.Get(); ok {
		s.invoke(t, "asap")
		return
	}

	// Priority 4: idle hook.
	if s.idleTask != nil {
		s.invoke(s.idleTask, "idle")
	}
}

// promoteDueEvents moves every event whose deadline is not after now
// (a deadline equal to now counts as due) from the event queue to the
// asap queue, stopping when the event queue is
// exhausted, its soonest deadline is still in the future, or the asap
// queue has no room left.
func (s *Scheduler) promoteDueEvents() {
	now := s.getTime()
	promoted := 0
	for !s.asapQueue.IsFull() {
		evt, ok := s.eventQueue.Peek()
		if !ok || evt.Deadline.IsAfter(now) {
			break
		}

		popped, ok := s.eventQueue.Pop()
		if !ok {
			// Defensive: peek succeeded but pop failed. Per the error
			// taxonomy this is an internal inconsistency — abort this
			// promotion pass rather than spin or propagate.
			s.log().Inconsistent("event queue peek succeeded but pop failed")
			break
		}

		if !s.asapQueue.Put(popped.Task) {
			// Defensive: the IsFull precheck above should guarantee this
			// put succeeds; if it doesn't, free the wrapper and stop
			// rather than leak it or retry indefinitely.
			s.eventPool.Free(popped)
			break
		}
		s.eventPool.Free(popped)
		promoted++
	}
	s.log().Promoted(promoted)
}

func (s *Scheduler) invoke(t task.Task, source string) {
	s.log().TaskInvoked(source, fmt.Sprintf("%T", t))
	s.currentTask = t
	t.Invoke(nil)
	s.currentTask = nil
}
