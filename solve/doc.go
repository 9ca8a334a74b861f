// Package solve holds the control plane of one optimize call: the
// long-lived Environment, the per-solve Session, the user callback
// Context, and the termination signal that ties them together.
//
// 🚀 How the pieces relate:
//
//	Environment — lives as long as the solver: tolerances, the finite
//	              infinity sentinel, time/iteration limits, refactorization
//	              ceilings, the registered callback, and the internal
//	              termination flag.
//	Work        — the long-lived solver working state: the eta arena, the
//	              timing ledger and the refactorization bookkeeping. Reset
//	              between solves to reuse its memory.
//	Session     — a short-lived view created by Init at the start of one
//	              optimize call and invalidated by Cleanup at its end. It
//	              owns no memory; every field references longer-lived state.
//	Context     — the callback context: the registered hook, its opaque
//	              user data, and invocation statistics. Allocated once per
//	              environment, reset for every solve.
//
// Termination is a single logical flag with three write sources: the
// environment's internal flag, an optional caller-owned external flag
// registered with SetInterruptFlag (written by a supervising goroutine or
// signal handler, no lock taken), and the callback context's flag set when
// a pre-optimize hook returns non-zero. The iteration loop polls
// Session.Terminated, which ORs all three; within one solve the signal is
// monotonic — nothing clears it until the next Session.Init.
//
// Cancellation is cooperative: a flag polled once per pivot, never a
// forced interrupt of in-flight work. All flags are atomics, so the
// external write path has well-defined ordering; everything else in this
// package assumes a single thread of control per solve.
//
// Sketch of a driver:
//
//	env := solve.NewEnvironment()
//	env.SetCallback(myHook, myData)
//	work := solve.NewWork(1 << 16)
//
//	var sess solve.Session
//	if err := sess.Init(work, env); err != nil { ... }
//	defer sess.Cleanup()
//
//	if sess.InvokePreHook(model) != 0 {
//	    return // user callback aborted the solve before it started
//	}
//	for !sess.Terminated() && !sess.ExceededIterLimit() {
//	    // one simplex pivot
//	    sess.Iteration++
//	}
//	sess.InvokePostHook(model) // diagnostics only, cannot abort
package solve
