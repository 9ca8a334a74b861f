// Package refactor decides, once per simplex iteration, whether the basis
// factorization should be rebuilt from scratch.
//
// The decision is a pure function over two inputs:
//
//   - State — the solver's basis-update bookkeeping: how many eta vectors
//     have accumulated since the last refactorization, how much memory they
//     occupy, and how FTRAN times have drifted from the baseline captured
//     right after that refactorization;
//   - Limits — the environment's configured ceilings, each individually
//     disableable with a non-positive value.
//
// Three outcomes, in strict precedence order:
//
//	Required    — a hard ceiling (eta count or eta memory) is exceeded;
//	              ignoring it risks unbounded memory growth or an unstable
//	              update chain.
//	Recommended — FTRAN has slowed past DegradationFactor times its
//	              post-refactor baseline, or the configured iteration
//	              interval has elapsed.
//	NotNeeded   — otherwise.
//
// The policy is advisory: a nil State or nil Limits yields NotNeeded, and
// the driver remains free to force a refactorization regardless.
package refactor
