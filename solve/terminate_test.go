package solve_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpcore/simplexrt/solve"
)

// TestTerminated_InternalFlag verifies that the environment's internal
// flag alone makes the session report termination.
func TestTerminated_InternalFlag(t *testing.T) {
	env := solve.NewEnvironment()
	var sess solve.Session
	require.NoError(t, sess.Init(nil, env))

	assert.False(t, sess.Terminated())
	env.RequestTermination()
	assert.True(t, sess.Terminated())
}

// TestTerminated_ExternalFlag verifies that a caller-owned flag set
// directly — as a supervising goroutine or signal handler would — is
// observed by the session's poll.
func TestTerminated_ExternalFlag(t *testing.T) {
	env := solve.NewEnvironment()
	var interrupt atomic.Bool
	env.SetInterruptFlag(&interrupt)

	var sess solve.Session
	require.NoError(t, sess.Init(nil, env))

	assert.False(t, sess.Terminated())
	interrupt.Store(true) // external write, no lock, no solver API
	assert.True(t, sess.Terminated())
}

// TestTerminated_CallbackFlag verifies that the callback context's flag
// alone is sufficient.
func TestTerminated_CallbackFlag(t *testing.T) {
	env := solve.NewEnvironment()
	env.SetCallback(func(model, data any) int { return 7 }, nil)

	var sess solve.Session
	require.NoError(t, sess.Init(nil, env))

	assert.False(t, sess.Terminated())
	require.Equal(t, 7, sess.InvokePreHook("model"))
	assert.True(t, sess.Terminated())
	assert.True(t, env.Callback().TerminateRequested())
}

// TestTerminated_LockstepExternal verifies that RequestTermination writes
// the registered external flag in lockstep with the internal one.
func TestTerminated_LockstepExternal(t *testing.T) {
	env := solve.NewEnvironment()
	var interrupt atomic.Bool
	env.SetInterruptFlag(&interrupt)

	env.RequestTermination()
	assert.True(t, interrupt.Load(), "external location must be written in lockstep")
	assert.True(t, env.TerminationRequested())
}

// TestTerminated_MonotonicWithinSolve verifies that the signal cannot be
// cleared mid-solve: dropping one source while another remains set still
// reports true, and the environment offers no mid-solve clear at all.
func TestTerminated_MonotonicWithinSolve(t *testing.T) {
	env := solve.NewEnvironment()
	var interrupt atomic.Bool
	env.SetInterruptFlag(&interrupt)

	var sess solve.Session
	require.NoError(t, sess.Init(nil, env))

	env.RequestTermination()
	interrupt.Store(false) // the owner clears its flag; internal source remains
	assert.True(t, sess.Terminated(), "one cleared source must not mask another")
}

// TestTerminated_ClearedByNextInit verifies that the internal and
// callback flags reset when the session is reinitialized for a new solve,
// while the caller-owned external flag is left to its owner.
func TestTerminated_ClearedByNextInit(t *testing.T) {
	env := solve.NewEnvironment()
	env.SetCallback(func(model, data any) int { return 1 }, nil)
	var interrupt atomic.Bool
	env.SetInterruptFlag(&interrupt)

	var sess solve.Session
	require.NoError(t, sess.Init(nil, env))
	sess.RequestTermination()
	require.True(t, sess.Terminated())
	sess.Cleanup()

	interrupt.Store(false) // the owner acknowledges the interrupt
	require.NoError(t, sess.Init(nil, env))
	assert.False(t, sess.Terminated(), "a new solve starts with a clear signal")
}

// TestTerminated_SessionEntryPoint verifies Session.RequestTermination
// raises all three sources at once, and is safe on absent collaborators.
func TestTerminated_SessionEntryPoint(t *testing.T) {
	env := solve.NewEnvironment()
	ctx := env.SetCallback(func(model, data any) int { return 0 }, nil)
	var interrupt atomic.Bool
	env.SetInterruptFlag(&interrupt)

	var sess solve.Session
	require.NoError(t, sess.Init(nil, env))
	sess.RequestTermination()

	assert.True(t, env.TerminationRequested())
	assert.True(t, interrupt.Load())
	assert.True(t, ctx.TerminateRequested())

	// Absent handles are no-ops, never panics.
	var none *solve.Session
	assert.NotPanics(t, func() { none.RequestTermination() })
	assert.False(t, none.Terminated())

	var bare solve.Session
	require.NoError(t, bare.Init(nil, nil))
	assert.NotPanics(t, func() { bare.RequestTermination() })
	assert.False(t, bare.Terminated())
}

// TestRequestTermination_NilEnvironment verifies the environment-level
// operations are no-ops on a nil environment.
func TestRequestTermination_NilEnvironment(t *testing.T) {
	var env *solve.Environment

	assert.NotPanics(t, func() {
		env.RequestTermination()
		env.SetInterruptFlag(nil)
	})
	assert.False(t, env.TerminationRequested())
	assert.Nil(t, env.SetCallback(nil, nil))
	assert.Nil(t, env.Callback())
}
