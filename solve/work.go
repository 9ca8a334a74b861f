package solve

import (
	"github.com/lpcore/simplexrt/arena"
	"github.com/lpcore/simplexrt/refactor"
	"github.com/lpcore/simplexrt/timing"
)

// Work is the long-lived solver working state a session views: the eta
// arena, the optional timing ledger, and the refactorization bookkeeping.
// One Work belongs to one solver instance; Reset it between solves to
// reuse its memory, or drop it and build a new one at the cost of the
// reuse optimization. Not safe for concurrent solves.
type Work struct {
	Etas   *arena.Arena   // eta-vector storage, bulk-reclaimed
	Ledger *timing.Ledger // nil disables timing
	State  refactor.State // consumed by refactor.Decide each iteration
	Method Method         // preferred simplex variant for the next solve
}

// NewWork returns working state with an empty eta arena (minChunkSize as
// in arena.New) and a fresh timing ledger.
func NewWork(minChunkSize int) *Work {
	return &Work{
		Etas:   arena.New(minChunkSize),
		Ledger: timing.New(),
	}
}

// Reset readies the working state for the next solve: the eta arena
// rewinds without releasing its chunks, the ledger and the refactor
// bookkeeping restart from zero. Safe on a nil Work.
func (w *Work) Reset() {
	if w == nil {
		return
	}
	if w.Etas != nil {
		w.Etas.Reset()
	}
	w.Ledger.Reset()
	w.State = refactor.State{}
}
