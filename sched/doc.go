// Package sched implements the cooperative, fixed-memory dispatch engine:
// a single Scheduler value draining an interrupt queue, an asap queue,
// and a time-ordered event queue in strict priority order, one task
// invocation per Step call.
//
// Grounded on joeycumines-go-utilpkg's eventloop package and its Loop
// type: a long-lived value gating every entry point behind an
// initialized flag, a single-task-per-call dispatch loop, a recursion
// guard against re-entering dispatch from within a running task
// (eventloop.ErrReentrantRun), and sentinel package errors for every
// failure kind instead of panics. It differs from eventloop.Loop in the
// one place the domain differs: there is no goroutine, no I/O poller, and
// no promise machinery here — Step is called synchronously by the host's
// own main loop, and the only concurrent entry point is
// SubmitFromInterrupt, which touches nothing but the lock-free ring in
// package ring.
package sched
