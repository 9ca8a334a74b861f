// Package arena provides the chunked bump allocator backing the eta file
// of a revised-simplex solver: the sequence of basis-update vectors created
// by pivots and discarded wholesale at each refactorization.
//
// The allocator is tuned for the pivot hot loop:
//
//   - Alloc bumps an offset inside the active chunk — no free lists, no
//     per-vector bookkeeping, no per-vector release.
//   - When the active chunk is full, a new chunk is appended; the target
//     chunk size doubles each time (clamped to MaxChunkSize) so long solves
//     settle into a handful of large chunks.
//   - Reset rewinds the bump pointer to the first chunk and keeps every
//     chunk's backing memory, so the next solve reuses it allocation-free.
//   - Free drops the whole chain and returns the arena to its initial
//     empty state.
//
// The trade-off is deliberate: the unused tail of a chunk is wasted until
// the next Reset or Free. The arena buys pivot-loop speed with bytes.
//
// Slices returned by Alloc, Floats and Ints are valid only until the next
// Reset or Free; callers must not retain them across either call. An Arena
// is not safe for concurrent use — one arena per solve.
//
// Example:
//
//	a := arena.New(1 << 16)
//	eta := a.Floats(m)   // one eta vector, lives until a.Reset()
//	rows := a.Ints(m)    // its row indices, same lifetime
//	...
//	a.Reset()            // refactorized: drop every eta at once
package arena
