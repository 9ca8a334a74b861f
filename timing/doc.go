// Package timing accumulates per-phase elapsed time and operation counts
// for the simplex iteration loop: pricing, ratio test, FTRAN/BTRAN,
// basis update, reinversion, and the whole-iteration total.
//
// Two recording styles are supported:
//
//   - Start / Stop brackets around a code section, for phases the ledger
//     times itself;
//   - Record, for callers that measure elapsed time on their own (for
//     example summing several sub-phases before folding them in once).
//
// The Total category additionally derives an iteration rate
// (operations per second) every time it is updated.
//
// The ledger is an optional collaborator: every method is a no-op on a
// nil *Ledger, so a solver can thread one handle through its hot loop and
// simply leave it nil when diagnostics are off. A mis-specified category
// is likewise a silent no-op rather than a crash in the pivot loop.
//
// A Ledger is not safe for concurrent use; keep one per solve.
package timing
