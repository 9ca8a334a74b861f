package timing

import "time"

// Category names one timed phase of the simplex iteration.
type Category int

const (
	// Total covers the whole iteration; updating it also refreshes the
	// derived iteration rate.
	Total Category = iota
	// Pricing covers reduced-cost computation and entering-variable choice.
	Pricing
	// RatioTest covers the leaving-variable ratio test.
	RatioTest
	// Ftran covers forward transformations with the basis representation.
	Ftran
	// Btran covers backward transformations with the basis representation.
	Btran
	// Update covers the eta-file basis update.
	Update
	// Invert covers full refactorizations of the basis.
	Invert

	numCategories
)

// String returns the short phase name used in diagnostics output.
func (c Category) String() string {
	switch c {
	case Total:
		return "total"
	case Pricing:
		return "pricing"
	case RatioTest:
		return "ratio-test"
	case Ftran:
		return "ftran"
	case Btran:
		return "btran"
	case Update:
		return "update"
	case Invert:
		return "invert"
	default:
		return "unknown"
	}
}

// Stats is the accumulated record of one category.
type Stats struct {
	Count      int64         // operations folded into this category
	Cumulative time.Duration // total elapsed time
	Last       time.Duration // most recent elapsed time
	Average    time.Duration // Cumulative / Count; zero while Count == 0
}

// Ledger accumulates Stats for a fixed set of categories. The zero value
// should not be used directly; construct with New. A nil *Ledger is a
// valid "timing disabled" handle: all methods no-op on it.
type Ledger struct {
	cats    [numCategories]Stats
	rate    float64 // iterations per second, derived from Total
	current Category
	started time.Time
	running bool
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock substitutes the timestamp source, for tests. The default is
// time.Now, whose monotonic reading is immune to wall-clock adjustment.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Start opens a timed section attributed to category c. A Start with a
// section already open abandons the earlier one.
func (l *Ledger) Start(c Category) {
	if l == nil {
		return
	}
	l.current = c
	l.started = l.now()
	l.running = true
}

// Stop closes the section opened by Start and folds the elapsed time into
// the category selected there. Without a matching Start it is a no-op.
func (l *Ledger) Stop() {
	if l == nil || !l.running {
		return
	}
	elapsed := l.now().Sub(l.started)
	l.running = false
	l.fold(elapsed, l.current)
}

// Record folds a caller-measured duration into category c.
func (l *Ledger) Record(d time.Duration, c Category) {
	if l == nil {
		return
	}
	l.fold(d, c)
}

// fold accumulates one sample. An out-of-range category is dropped
// silently: a configuration slip must not crash the pivot loop.
func (l *Ledger) fold(d time.Duration, c Category) {
	if c < 0 || c >= numCategories {
		return
	}
	s := &l.cats[c]
	s.Count++
	s.Cumulative += d
	s.Last = d
	s.Average = s.Cumulative / time.Duration(s.Count)

	if c == Total && s.Cumulative > 0 {
		l.rate = float64(s.Count) / s.Cumulative.Seconds()
	}
}

// Stats returns the accumulated record for category c, or zero Stats for
// an out-of-range category or a nil ledger.
func (l *Ledger) Stats(c Category) Stats {
	if l == nil || c < 0 || c >= numCategories {
		return Stats{}
	}

	return l.cats[c]
}

// Rate reports the derived iteration rate (Total operations per second),
// zero until Total has accumulated positive time.
func (l *Ledger) Rate() float64 {
	if l == nil {
		return 0
	}

	return l.rate
}

// Reset zeroes every category, the rate, and any open section, so the
// ledger can be reused by the next solve.
func (l *Ledger) Reset() {
	if l == nil {
		return
	}
	l.cats = [numCategories]Stats{}
	l.rate = 0
	l.running = false
}
