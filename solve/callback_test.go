package solve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpcore/simplexrt/solve"
)

// hookProbe records what the registered hook observed.
type hookProbe struct {
	calls int
	model any
	data  any
	rc    int
}

func (p *hookProbe) hook(model, data any) int {
	p.calls++
	p.model = model
	p.data = data

	return p.rc
}

// newHookedSession wires an environment with probe's hook and returns an
// initialized session.
func newHookedSession(t *testing.T, probe *hookProbe, data any) (*solve.Session, *solve.Environment) {
	t.Helper()
	env := solve.NewEnvironment()
	env.SetCallback(probe.hook, data)

	sess := new(solve.Session)
	require.NoError(t, sess.Init(nil, env))

	return sess, env
}

// TestInvoke_PassesModelAndData verifies the hook receives the model
// handle and the registered opaque data, untouched.
func TestInvoke_PassesModelAndData(t *testing.T) {
	probe := &hookProbe{}
	userData := map[string]int{"budget": 10}
	sess, env := newHookedSession(t, probe, userData)

	model := struct{ name string }{"lp"}
	assert.Zero(t, sess.InvokePreHook(model))

	assert.Equal(t, 1, probe.calls)
	assert.Equal(t, model, probe.model)
	assert.Equal(t, userData, probe.data, "user data must be passed through as registered")
	assert.Equal(t, userData, env.Callback().Data())
}

// TestInvoke_CountsAndTimes verifies invocation statistics: every pre and
// post call increments the count and accumulates non-negative user time.
func TestInvoke_CountsAndTimes(t *testing.T) {
	probe := &hookProbe{}
	sess, env := newHookedSession(t, probe, nil)

	sess.InvokePreHook("m")
	sess.Iteration = 42
	sess.InvokePostHook("m")

	ctx := env.Callback()
	assert.Equal(t, int64(2), ctx.Count)
	assert.GreaterOrEqual(t, ctx.Elapsed, time.Duration(0))
	assert.Equal(t, int64(42), ctx.LastIteration, "context records the iteration of the last invocation")
}

// TestInvoke_PreTerminates verifies the asymmetry: a non-zero pre-hook
// return raises the termination flag, a non-zero post-hook return does
// not.
func TestInvoke_PreTerminates(t *testing.T) {
	probe := &hookProbe{rc: 3}
	sess, env := newHookedSession(t, probe, nil)

	assert.Equal(t, 3, sess.InvokePreHook("m"))
	assert.True(t, env.Callback().TerminateRequested())
	assert.True(t, sess.Terminated())
}

// TestInvoke_PostNeverTerminates covers the post-optimize side of the
// asymmetry: the return value is diagnostics only.
func TestInvoke_PostNeverTerminates(t *testing.T) {
	probe := &hookProbe{rc: 3}
	sess, env := newHookedSession(t, probe, nil)

	assert.Equal(t, 3, sess.InvokePostHook("m"), "return value is still reported")
	assert.False(t, env.Callback().TerminateRequested(), "post-optimize must not raise the flag")
	assert.False(t, sess.Terminated())
}

// TestInvoke_DisabledIsInert verifies that a disabled context never
// counts, times, or calls the hook, even with one registered.
func TestInvoke_DisabledIsInert(t *testing.T) {
	probe := &hookProbe{rc: 9}
	sess, env := newHookedSession(t, probe, nil)
	env.Callback().SetEnabled(false)

	assert.Zero(t, sess.InvokePreHook("m"))
	assert.Zero(t, sess.InvokePostHook("m"))
	assert.Zero(t, probe.calls, "a disabled context must not reach user code")
	assert.Zero(t, env.Callback().Count)
	assert.Zero(t, env.Callback().Elapsed)
}

// TestInvoke_AbsentCollaborators verifies every guard returns success:
// nil model, nil environment, no context, nil hook.
func TestInvoke_AbsentCollaborators(t *testing.T) {
	// Nil model.
	probe := &hookProbe{rc: 5}
	sess, _ := newHookedSession(t, probe, nil)
	assert.Zero(t, sess.InvokePreHook(nil))
	assert.Zero(t, probe.calls)

	// No environment, no context.
	bare := new(solve.Session)
	require.NoError(t, bare.Init(nil, nil))
	assert.Zero(t, bare.InvokePreHook("m"))
	assert.Zero(t, bare.InvokePostHook("m"))

	// Environment without a registered callback.
	plain := new(solve.Session)
	require.NoError(t, plain.Init(nil, solve.NewEnvironment()))
	assert.Zero(t, plain.InvokePreHook("m"))

	// Registered context with a nil hook.
	env := solve.NewEnvironment()
	env.SetCallback(nil, nil)
	nohook := new(solve.Session)
	require.NoError(t, nohook.Init(nil, env))
	assert.Zero(t, nohook.InvokePreHook("m"))
	assert.Zero(t, env.Callback().Count)

	// Nil session.
	var none *solve.Session
	assert.Zero(t, none.InvokePreHook("m"))
}

// TestContext_ResetPreservesRegistration verifies Reset zeroes statistics
// and the termination flag while keeping hook, data and enabled state.
func TestContext_ResetPreservesRegistration(t *testing.T) {
	probe := &hookProbe{rc: 1}
	sess, env := newHookedSession(t, probe, "payload")

	sess.InvokePreHook("m")
	ctx := env.Callback()
	ctx.BestObjective = -12.5
	require.Equal(t, int64(1), ctx.Count)
	require.True(t, ctx.TerminateRequested())

	ctx.Reset()
	assert.Zero(t, ctx.Count)
	assert.Zero(t, ctx.Elapsed)
	assert.Zero(t, ctx.BestObjective)
	assert.False(t, ctx.TerminateRequested())
	assert.True(t, ctx.Enabled(), "Reset keeps the enabled flag")
	assert.Equal(t, "payload", ctx.Data(), "Reset keeps the user data")

	probe.rc = 0
	assert.Zero(t, sess.InvokePreHook("m"))
	assert.Equal(t, 2, probe.calls, "Reset keeps the registered hook")
}

// TestContext_NilSafe verifies the context accessors on a nil context.
func TestContext_NilSafe(t *testing.T) {
	var ctx *solve.Context

	assert.False(t, ctx.Enabled())
	assert.False(t, ctx.TerminateRequested())
	assert.Nil(t, ctx.Data())
	assert.NotPanics(t, func() {
		ctx.SetEnabled(true)
		ctx.Reset()
	})
}
