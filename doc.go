// Package simplexrt is the runtime backbone of a revised-simplex solver:
// the allocation, timing, refactorization and interruption machinery that
// every pivot of the simplex method runs through.
//
// 🚀 What is simplexrt?
//
//	A small, focused library that brings together:
//		• Eta arena: bump-pointer chunked allocator for basis-update vectors
//		• Timing ledger: per-phase elapsed time, counts and iteration rate
//		• Refactor policy: the refactorize-now / soon / not-yet decision
//		• Termination signal: one stop condition fed from three sources
//		• Callback hooks: timed, counted pre/post-optimize user callbacks
//		• Solve session: the per-optimize control block tying it all together
//
// ✨ Why simplexrt?
//
//   - Hot-loop friendly – no per-vector frees, no hidden allocation
//   - Cooperative cancellation – a flag polled each pivot, never a forced stop
//   - Reusable – arenas, ledgers and callback contexts reset between solves
//   - Advisory by design – absent collaborators disable features, never crash
//
// Everything is organized under four subpackages:
//
//	arena/    — chunked bump allocator for eta vectors, bulk reset/free
//	timing/   — per-category elapsed-time and operation-count ledger
//	refactor/ — pure refactorization decision over eta/FTRAN bookkeeping
//	solve/    — environment, termination, callbacks and the solve session
//
// One pivot of the driving loop, sketched:
//
//	for !sess.Terminated() && !sess.ExceededIterLimit() {
//	    if refactor.Decide(&work.State, &env.Limits) != refactor.NotNeeded {
//	        // rebuild the basis factorization, then work.State.NoteRefactor(...)
//	    }
//	    eta := work.Etas.Floats(m) // valid until the next work.Etas.Reset()
//	    // ... price, ratio-test, update basis ...
//	    sess.Iteration++
//	}
//
// See examples/ for complete drivers, including a dense revised-simplex
// demo built on gonum.
//
//	go get github.com/lpcore/simplexrt
package simplexrt
