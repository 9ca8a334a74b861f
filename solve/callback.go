package solve

import (
	"sync/atomic"
	"time"
)

// Hook is a user-supplied callback invoked around one optimize call. It
// receives the model handle passed to the invoker and the opaque data
// registered with SetCallback. A non-zero return from the pre-optimize
// invocation aborts the solve; from the post-optimize invocation it is
// reported to the caller for diagnostics only.
type Hook func(model, data any) int

// Context is the callback bookkeeping attached to an environment. It is
// allocated once (by SetCallback), reused across solves via Reset, and
// never owns the user data it references.
//
// The statistics fields are exported for the driver and for user hooks
// (which typically update BestObjective); they are only meaningful on the
// solve's own thread. The termination flag alone is an atomic.
type Context struct {
	enabled bool
	hook    Hook
	data    any

	Count         int64         // completed hook invocations
	Elapsed       time.Duration // cumulative time spent inside user code
	BestObjective float64       // best objective seen, maintained by the driver
	LastIteration int64         // iteration count as of the last invocation
	Started       time.Time     // solve start, stamped by Session.Init

	terminate atomic.Bool
}

// Enabled reports whether invocations are currently allowed.
func (c *Context) Enabled() bool {
	return c != nil && c.enabled
}

// SetEnabled toggles invocation without dropping the registered hook or
// data. Disabled contexts are completely inert: no counting, no timing.
func (c *Context) SetEnabled(on bool) {
	if c == nil {
		return
	}
	c.enabled = on
}

// Data returns the opaque user data registered with the hook.
func (c *Context) Data() any {
	if c == nil {
		return nil
	}

	return c.data
}

// TerminateRequested reports whether a pre-optimize hook asked to stop.
func (c *Context) TerminateRequested() bool {
	return c != nil && c.terminate.Load()
}

// Reset clears statistics, timing and the termination flag for a new
// solve, preserving the registered hook, user data and enabled state.
func (c *Context) Reset() {
	if c == nil {
		return
	}
	c.Count = 0
	c.Elapsed = 0
	c.BestObjective = 0
	c.LastIteration = 0
	c.Started = time.Time{}
	c.terminate.Store(false)
}
