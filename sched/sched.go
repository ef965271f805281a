package sched

import (
	"github.com/mu-tools/mu-sched/blockpool"
	"github.com/mu-tools/mu-sched/clock"
	"github.com/mu-tools/mu-sched/fifoqueue"
	"github.com/mu-tools/mu-sched/ring"
	"github.com/mu-tools/mu-sched/sortedvec"
	"github.com/mu-tools/mu-sched/task"
)

// Event pairs a task with the absolute deadline at which it becomes
// eligible to run. Event wrappers are allocated from the caller-supplied
// event pool at SubmitAt/SubmitIn time and freed the instant the wrapped
// task is promoted to the asap queue (or on any error path that aborts
// submission) — an Event exists only while its task is pending.
type Event struct {
	Task     task.Task
	Deadline clock.Abs
}

// Logger receives structured notifications of scheduler activity. A nil
// Logger (the default) disables all logging with zero overhead. See
// package schedlog for a logiface-backed implementation.
type Logger interface {
	TaskInvoked(source string, taskType string)
	Promoted(n int)
	QueueFull(queue string)
	PoolExhausted()
	Inconsistent(detail string)
}

// Scheduler is the dispatch engine described in the package doc. The
// zero value is a valid-but-uninitialized Scheduler: every method on it
// is a documented no-op/false/none until New populates it successfully.
type Scheduler struct {
	interruptQueue *ring.Ring[task.Task]
	asapQueue      *fifoqueue.Queue[task.Task]
	eventQueue     *sortedvec.Vec[*Event]
	eventPool      *blockpool.Pool[Event]

	idleTask    task.Task
	getTime     clock.Func
	currentTask task.Task
	logger      Logger

	initialized bool
}

// Option configures optional Scheduler behavior at construction time:
// the idle task, the time function, and the logger. The four queue/pool
// collaborators are mandatory and so are New's positional parameters,
// not options.
type Option interface {
	apply(*Scheduler)
}

type optionFunc func(*Scheduler)

func (f optionFunc) apply(s *Scheduler) { f(s) }

// WithIdleTask installs the task invoked when nothing else is runnable.
func WithIdleTask(t task.Task) Option {
	return optionFunc(func(s *Scheduler) { s.idleTask = t })
}

// WithTimeFunc overrides the time source used to decide which events are
// due. A nil fn is ignored (the default, clock.System, is kept).
func WithTimeFunc(fn clock.Func) Option {
	return optionFunc(func(s *Scheduler) {
		if fn != nil {
			s.getTime = fn
		}
	})
}

// WithLogger installs a structured logger for scheduler activity.
func WithLogger(l Logger) Option {
	return optionFunc(func(s *Scheduler) { s.logger = l })
}

// New constructs a Scheduler from its four required external
// collaborators: the interrupt ring, the asap queue, the event queue,
// and the event pool backing that queue's wrappers. All four must be
// non-nil and already constructed with their own fixed capacities (the
// event queue and event pool should share the same capacity, per the
// pool-conservation invariant).
//
// If any collaborator is nil, New returns a non-nil but uninitialized
// Scheduler alongside ErrMissingCollaborator: every method on it is then
// a documented no-op, matching the "no subsequent entry point performs
// any action" rule for failed initialization. There is no separate
// re-init path in this port — construct a fresh Scheduler via New again.
func New(
	interruptQueue *ring.Ring[task.Task],
	asapQueue *fifoqueue.Queue[task.Task],
	eventQueue *sortedvec.Vec[*Event],
	eventPool *blockpool.Pool[Event],
	opts ...Option,
) (*Scheduler, error) {
	s := &Scheduler{getTime: clock.System}
	if interruptQueue == nil || asapQueue == nil || eventQueue == nil || eventPool == nil {
		return s, ErrMissingCollaborator
	}
	s.interruptQueue = interruptQueue
	s.asapQueue = asapQueue
	s.eventQueue = eventQueue
	s.eventPool = eventPool
	for _, opt := range opts {
		if opt != nil {
			opt.apply(s)
		}
	}
	s.initialized = true
	return s, nil
}

// compareEvents orders Events so the earliest deadline sorts last (sorts
// "after" in sortedvec's terms), matching the event queue's tail-is-
// earliest convention: a pop/peek always returns the soonest-due event
// in O(1).
func compareEvents(a, b *Event) int {
	switch {
	case a.Deadline.IsBefore(b.Deadline):
		return 1
	case a.Deadline.IsAfter(b.Deadline):
		return -1
	default:
		return 0
	}
}

// Stats is a read-only snapshot of queue occupancy, for observability
// only — it has no effect on dispatch; it gives host code something to
// export as a metric and lets tests check pool conservation through
// EventPoolFree.
type Stats struct {
	InterruptQueueLen int
	ASAPQueueLen      int
	EventQueueLen     int
	EventPoolFree     int
}

// Stats returns a snapshot of current queue occupancy. Returns the zero
// Stats if the Scheduler is not initialized.
func (s *Scheduler) Stats() Stats {
	if !s.initialized {
		return Stats{}
	}
	return Stats{
		InterruptQueueLen: s.interruptQueue.Len(),
		ASAPQueueLen:      s.asapQueue.Len(),
		EventQueueLen:     s.eventQueue.Len(),
		EventPoolFree:     s.eventPool.FreeCount(),
	}
}

func (s *Scheduler) log() Logger {
	if s.logger == nil {
		return noopLogger{}
	}
	return s.logger
}

type noopLogger struct{}

func (noopLogger) TaskInvoked(string, string) {}
func (noopLogger) Promoted(int)               {}
func (noopLogger) QueueFull(string)           {}
func (noopLogger) PoolExhausted()             {}
func (noopLogger) Inconsistent(string)        {}
