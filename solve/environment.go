package solve

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lpcore/simplexrt/refactor"
)

// Defaults for a fresh environment.
const (
	// DefaultFeasTol is the primal feasibility tolerance.
	DefaultFeasTol = 1e-9
	// DefaultOptTol is the dual feasibility (optimality) tolerance.
	DefaultOptTol = 1e-7
	// DefaultInfinity is the finite infinity sentinel. Bounds at or beyond
	// it are treated as absent. A large finite value rather than IEEE
	// infinity, so it never breeds NaNs through arithmetic.
	DefaultInfinity = 1e30
)

// Environment is the long-lived configuration and signaling hub shared by
// every solve against one solver instance. Plain fields are read by the
// iteration loop and must not be mutated mid-solve; the termination flags
// are atomics and may be written from anywhere at any time.
type Environment struct {
	FeasTol  float64 // primal feasibility tolerance
	OptTol   float64 // optimality tolerance
	Infinity float64 // finite infinity sentinel
	Verbose  bool    // print decision-point diagnostics

	TimeLimit time.Duration // per-solve wall-time limit; <= 0 means none
	IterLimit int64         // per-solve iteration limit; <= 0 means none

	Limits refactor.Limits // refactorization ceilings, read by the policy

	terminate atomic.Bool  // internal termination source
	interrupt *atomic.Bool // caller-owned external source, may be nil
	ctx       *Context     // callback context, allocated on first SetCallback
}

// NewEnvironment returns an environment with production defaults and no
// callback registered.
func NewEnvironment() *Environment {
	return &Environment{
		FeasTol:  DefaultFeasTol,
		OptTol:   DefaultOptTol,
		Infinity: DefaultInfinity,
		Limits:   refactor.DefaultLimits(),
	}
}

// SetInterruptFlag registers a caller-owned flag as an additional
// termination source. A supervising goroutine or signal handler may set
// it at any time without taking a lock; the iteration loop observes it at
// its next poll. RequestTermination also writes it, keeping the external
// location in lockstep with the internal flag. Pass nil to unregister.
func (e *Environment) SetInterruptFlag(f *atomic.Bool) {
	if e == nil {
		return
	}
	e.interrupt = f
}

// SetCallback registers hook and its opaque user data, allocating the
// callback context on first use and enabling it. The data is user-owned:
// this package never copies, inspects or frees it. Passing a nil hook
// leaves the context registered but inert.
func (e *Environment) SetCallback(hook Hook, data any) *Context {
	if e == nil {
		return nil
	}
	if e.ctx == nil {
		e.ctx = &Context{}
	}
	e.ctx.hook = hook
	e.ctx.data = data
	e.ctx.enabled = true

	return e.ctx
}

// Callback returns the callback context, or nil if none was registered.
func (e *Environment) Callback() *Context {
	if e == nil {
		return nil
	}

	return e.ctx
}

// RequestTermination raises the internal termination flag and, if an
// external flag is registered, writes it too. Safe on a nil environment.
// The flag stays raised until the next Session.Init.
func (e *Environment) RequestTermination() {
	if e == nil {
		return
	}
	e.terminate.Store(true)
	if e.interrupt != nil {
		e.interrupt.Store(true)
	}
	if e.Verbose {
		fmt.Println("solve: termination requested")
	}
}

// TerminationRequested reports whether any source visible from the
// environment has raised the stop signal: the internal flag, the external
// flag, or the callback context's flag.
func (e *Environment) TerminationRequested() bool {
	if e == nil {
		return false
	}
	if e.terminate.Load() {
		return true
	}
	if e.interrupt != nil && e.interrupt.Load() {
		return true
	}

	return e.ctx != nil && e.ctx.TerminateRequested()
}
