// Package schedlog wires the scheduler's sched.Logger hook to a real
// structured-logging stack instead of hand-rolled formatting: logiface
// for the event-builder API, stumpy as its default zero-config JSON
// backend. Both come from the same joeycumines-go-utilpkg monorepo as
// eventloop, which documents (but never actually wires up) a swappable
// package-level structured Logger of its own (eventloop's logging.go);
// this package is that idea, implemented with the library the monorepo
// actually ships for it rather than a bespoke JSON-escaping routine.
package schedlog

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger adapts a logiface.Logger to the sched.Logger interface.
type Logger struct {
	l *logiface.Logger[*stumpy.Event]
}

// New builds a Logger backed by stumpy, logiface's JSON event backend.
// Pass stumpy Options (e.g. stumpy.WithTimeField) to customize field
// names, or none for stumpy's defaults. The logger writes at debug level
// and above so dispatch-engine events are visible; the level is fixed,
// and New takes no option that changes it.
func New(opts ...stumpy.Option) *Logger {
	return &Logger{
		l: stumpy.L.New(
			stumpy.L.WithLevel(logiface.LevelDebug),
			stumpy.L.WithStumpy(opts...),
		),
	}
}

// TaskInvoked logs that the dispatch engine is about to invoke a task
// drawn from the named source queue ("interrupt", "asap", or "idle").
func (lg *Logger) TaskInvoked(source string, taskType string) {
	lg.l.Debug().
		Str("component", "dispatch").
		Str("source", source).
		Str("task_type", taskType).
		Log("task invoked")
}

// Promoted logs that n due events were moved from the event queue to the
// asap queue during one step.
func (lg *Logger) Promoted(n int) {
	if n == 0 {
		return
	}
	lg.l.Debug().
		Str("component", "dispatch").
		Int("count", n).
		Log("events promoted")
}

// QueueFull logs a rejected submission because the named queue had no
// room.
func (lg *Logger) QueueFull(queue string) {
	lg.l.Warning().
		Str("component", "submit").
		Str("queue", queue).
		Log("queue full")
}

// PoolExhausted logs a rejected submit_at/submit_in because the event
// pool had no free blocks.
func (lg *Logger) PoolExhausted() {
	lg.l.Warning().
		Str("component", "submit").
		Log("event pool exhausted")
}

// Inconsistent logs the defensive "peek succeeded but pop failed" path
// in the dispatch engine's promotion pass (spec error kind: internal
// inconsistency).
func (lg *Logger) Inconsistent(detail string) {
	lg.l.Err().
		Str("component", "dispatch").
		Str("detail", detail).
		Log("internal inconsistency, aborting promotion pass")
}

