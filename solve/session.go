package solve

import (
	"fmt"
	"math"
	"time"
)

// Status is the coarse outcome/state code carried by a session.
type Status int

const (
	// Loaded: the session is initialized, no pivot has run yet.
	Loaded Status = iota
	// Running: the iteration loop is in progress.
	Running
	// Optimal: the driver proved optimality.
	Optimal
	// Infeasible: the driver proved primal infeasibility.
	Infeasible
	// Unbounded: the driver proved unboundedness.
	Unbounded
	// IterLimit: the iteration limit stopped the solve.
	IterLimit
	// TimeLimit: the wall-time limit stopped the solve.
	TimeLimit
	// Interrupted: the termination signal stopped the solve.
	Interrupted
)

// String returns the status name used in diagnostics output.
func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Running:
		return "running"
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case IterLimit:
		return "iteration-limit"
	case TimeLimit:
		return "time-limit"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Method selects the simplex variant driving the solve.
type Method int

const (
	// Primal simplex; the fallback when the working state expresses no
	// preference.
	Primal Method = iota
	// Dual simplex.
	Dual
)

// String returns the method name used in diagnostics output.
func (m Method) String() string {
	switch m {
	case Primal:
		return "primal"
	case Dual:
		return "dual"
	default:
		return "unknown"
	}
}

// Flag is a bit in the session's control-flag set.
type Flag uint32

const (
	// FlagPresolve: the driver ran presolve reductions for this solve.
	FlagPresolve Flag = 1 << iota
	// FlagScale: the driver scaled the constraint matrix.
	FlagScale
	// FlagWarmStart: the solve started from a supplied basis.
	FlagWarmStart
)

// Session is the short-lived control block of one optimize call: a view
// over longer-lived state, owning no memory of its own. Create it on the
// caller's stack, Init it at the top of the optimize entry point, Cleanup
// it on the way out. Not safe for concurrent use.
type Session struct {
	active bool

	Status    Status
	Iteration int64
	Phase     int // 1 while seeking feasibility, 2 while optimizing

	Work *Work
	Env  *Environment
	Ctx  *Context

	Started   time.Time
	TimeLimit time.Duration // <= 0 means none
	IterLimit int64

	Interrupted bool
	Method      Method
	Flags       Flag
}

// Init readies the session for one optimize call. It performs no heap
// allocation: limits are copied from the environment (or defaulted to
// effectively unbounded when it is absent), the environment's callback
// context is attached and reset, and the termination signal is cleared
// for the new solve. The externally owned interrupt flag is deliberately
// left alone — only its owner clears it.
//
// Init fails only when the session handle itself is absent.
func (s *Session) Init(w *Work, e *Environment) error {
	if s == nil {
		return ErrNilSession
	}

	s.active = true
	s.Status = Loaded
	s.Iteration = 0
	s.Phase = 0
	s.Work = w
	s.Env = e
	s.Started = time.Now()
	s.Interrupted = false
	s.Flags = 0

	s.TimeLimit = 0
	s.IterLimit = math.MaxInt64
	s.Ctx = nil
	if e != nil {
		if e.TimeLimit > 0 {
			s.TimeLimit = e.TimeLimit
		}
		if e.IterLimit > 0 {
			s.IterLimit = e.IterLimit
		}
		s.Ctx = e.ctx
		e.terminate.Store(false)
	}
	if s.Ctx != nil {
		s.Ctx.Reset()
		s.Ctx.Started = s.Started
	}

	s.Method = Primal
	if w != nil {
		s.Method = w.Method
	}

	return nil
}

// Cleanup invalidates the session and detaches every reference. It frees
// nothing, because the session owns nothing. Safe on a nil session and
// idempotent: a second Cleanup is a no-op on an already-zero value.
func (s *Session) Cleanup() {
	if s == nil {
		return
	}
	*s = Session{}
}

// Active reports whether the session is between Init and Cleanup.
func (s *Session) Active() bool {
	return s != nil && s.active
}

// RequestTermination raises every termination source reachable from the
// session: the environment's internal flag, the registered external flag,
// and the callback context's flag. This is the entry point user callback
// code should call. Safe on a nil session or absent environment.
func (s *Session) RequestTermination() {
	if s == nil {
		return
	}
	s.Env.RequestTermination()
	if s.Ctx != nil {
		s.Ctx.terminate.Store(true)
	}
}

// Terminated reports the effective stop condition: the OR of the
// environment's internal flag, the external flag, and the callback
// context's flag. The iteration loop must poll this — not any single
// source — once per pivot.
func (s *Session) Terminated() bool {
	if s == nil {
		return false
	}
	if s.Env.TerminationRequested() {
		return true
	}

	return s.Ctx.TerminateRequested()
}

// ExceededIterLimit reports whether the iteration counter has reached the
// session's limit.
func (s *Session) ExceededIterLimit() bool {
	return s != nil && s.Iteration >= s.IterLimit
}

// ExceededTimeLimit reports whether the wall time since Init has passed
// the session's limit, as of now.
func (s *Session) ExceededTimeLimit(now time.Time) bool {
	return s != nil && s.TimeLimit > 0 && now.Sub(s.Started) > s.TimeLimit
}

// InvokePreHook runs the registered callback before the iteration loop
// starts. With no model, environment, context, enabled flag or hook it
// returns 0: an absent callback is a disabled feature, not an error.
//
// A non-zero return raises the context's termination flag and is passed
// through; the caller must abort the optimize loop. The caller is
// expected to hold the environment's lock; the invoker itself is not
// reentrant-safe.
func (s *Session) InvokePreHook(model any) int {
	rc := s.invoke(model)
	if rc != 0 {
		s.Ctx.terminate.Store(true)
		if s.Env.Verbose {
			fmt.Printf("solve: pre-optimize callback returned %d, aborting\n", rc)
		}
	}

	return rc
}

// InvokePostHook runs the registered callback after the iteration loop
// has finished, with the same guards and bookkeeping as InvokePreHook. A
// non-zero return is reported for diagnostics only: the solve is already
// over, so it never raises the termination flag.
func (s *Session) InvokePostHook(model any) int {
	return s.invoke(model)
}

// invoke holds the shared guard chain and timing/count bookkeeping of
// both hook invocations.
func (s *Session) invoke(model any) int {
	if s == nil || model == nil || s.Env == nil {
		return 0
	}
	c := s.Ctx
	if c == nil || !c.enabled || c.hook == nil {
		return 0
	}

	c.Count++
	c.LastIteration = s.Iteration
	start := time.Now()
	rc := c.hook(model, c.data)
	c.Elapsed += time.Since(start)

	return rc
}
