package arena

import "unsafe"

const (
	// DefaultChunkSize is the initial chunk size used when New is given a
	// non-positive minimum (64 KiB).
	DefaultChunkSize = 1 << 16

	// MaxChunkSize caps the doubling growth of the target chunk size
	// (16 MiB). A single request larger than this still succeeds: the new
	// chunk is sized exactly to the request.
	MaxChunkSize = 1 << 24
)

// chunk is one fixed-capacity slab of arena memory. Chunks are never
// resized after creation, only appended to the arena's chunk sequence.
type chunk struct {
	buf  []byte // backing memory, len(buf) is the chunk capacity
	used int    // bump offset: bytes handed out from this chunk
}

// Arena is a chunked bump allocator for eta vectors. Allocations are never
// released individually; Reset reclaims them in bulk while retaining the
// chunks, Free releases everything. Not safe for concurrent use.
type Arena struct {
	chunks  []chunk
	active  int // index of the bump-pointer target; -1 while empty
	minSize int // floor for the target chunk size
	size    int // target capacity for the next appended chunk
}

// New returns an empty arena: no chunks are allocated until the first
// request. minChunkSize floors the capacity of every appended chunk; a
// non-positive value selects DefaultChunkSize.
func New(minChunkSize int) *Arena {
	if minChunkSize <= 0 {
		minChunkSize = DefaultChunkSize
	}

	return &Arena{active: -1, minSize: minChunkSize, size: minChunkSize}
}

// Alloc returns n uninitialized bytes carved from the active chunk,
// valid until the next Reset or Free. Returns nil when n <= 0.
//
// Uninitialized means exactly that: after a Reset the bytes hold whatever
// the previous solve left behind. Callers overwrite before reading.
func (a *Arena) Alloc(n int) []byte {
	if n <= 0 {
		return nil
	}

	return a.alloc(n, 1)
}

// Floats returns n float64s carved from the arena, 8-byte aligned,
// with the same lifetime as Alloc. Returns nil when n <= 0.
func (a *Arena) Floats(n int) []float64 {
	if n <= 0 {
		return nil
	}
	b := a.alloc(n*8, 8)

	return unsafe.Slice((*float64)(unsafe.Pointer(&b[0])), n)
}

// Ints returns n ints carved from the arena, pointer-aligned,
// with the same lifetime as Alloc. Returns nil when n <= 0.
func (a *Arena) Ints(n int) []int {
	if n <= 0 {
		return nil
	}
	const w = int(unsafe.Sizeof(int(0)))
	b := a.alloc(n*w, w)

	return unsafe.Slice((*int)(unsafe.Pointer(&b[0])), n)
}

// alloc serves every allocation: bump within the active chunk when the
// (aligned) request fits, otherwise fall to the slow path.
func (a *Arena) alloc(n, align int) []byte {
	if a.active >= 0 {
		c := &a.chunks[a.active]
		off := alignUp(c.used, align)
		if off+n <= len(c.buf) {
			c.used = off + n

			return c.buf[off : off+n : off+n]
		}
	}

	return a.allocSlow(n)
}

// allocSlow advances to the next retained chunk that can hold n bytes, or
// appends a fresh one. A fresh chunk's start is aligned for any element
// width, so no offset rounding is needed here.
func (a *Arena) allocSlow(n int) []byte {
	// 1) Reuse chunks retained by an earlier Reset, skipping any too small.
	for a.active+1 < len(a.chunks) {
		a.active++
		c := &a.chunks[a.active]
		c.used = 0
		if n <= len(c.buf) {
			c.used = n

			return c.buf[0:n:n]
		}
	}

	// 2) Append a new chunk. Capacity is the current target size, or the
	//    request itself when it is larger; the chain is only extended after
	//    the backing memory exists.
	size := a.size
	if n > size {
		size = n
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size), used: n})
	a.active = len(a.chunks) - 1

	// 3) Grow the target for future chunks: double, clamp, floor.
	a.size *= 2
	if a.size > MaxChunkSize {
		a.size = MaxChunkSize
	}
	if a.size < a.minSize {
		a.size = a.minSize
	}

	c := &a.chunks[a.active]

	return c.buf[0:n:n]
}

// Reset rewinds the bump pointer to the first chunk and keeps every
// chunk's backing memory for reuse. Every slice handed out before the
// Reset becomes invalid; dereferencing one reads the next solve's data.
func (a *Arena) Reset() {
	if len(a.chunks) == 0 {
		return
	}
	a.active = 0
	a.chunks[0].used = 0
}

// Free releases every chunk and returns the arena to its just-initialized
// state: no chunks, target size back at the configured minimum. The arena
// remains usable; the next Alloc simply starts a new chain.
func (a *Arena) Free() {
	a.chunks = nil
	a.active = -1
	a.size = a.minSize
}

// Used reports the bytes handed out since the last Reset or Free,
// including alignment padding. This is the eta-memory figure consumed by
// the refactorization policy.
func (a *Arena) Used() int64 {
	var total int64
	for i := 0; i <= a.active; i++ {
		total += int64(a.chunks[i].used)
	}

	return total
}

// Capacity reports the total backing memory held across all chunks,
// including chunks idle since the last Reset.
func (a *Arena) Capacity() int64 {
	var total int64
	for i := range a.chunks {
		total += int64(len(a.chunks[i].buf))
	}

	return total
}

// Chunks reports the length of the chunk chain.
func (a *Arena) Chunks() int { return len(a.chunks) }

// alignUp rounds off up to the next multiple of align (a power of two).
func alignUp(off, align int) int {
	mask := align - 1

	return (off + mask) &^ mask
}
