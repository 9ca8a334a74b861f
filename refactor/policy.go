package refactor

import "time"

// DegradationFactor is the FTRAN slowdown multiplier that triggers a
// Recommended decision: refactorize once the running average FTRAN time
// exceeds this many times the post-refactor baseline. The value is a
// heuristic proxy for numerical degradation of the eta chain, tunable
// rather than load-bearing.
const DegradationFactor = 3.0

// Decision is the three-valued outcome of the refactorization policy.
type Decision int

const (
	// NotNeeded: keep pivoting on the current factorization.
	NotNeeded Decision = iota
	// Recommended: a soft trigger fired; refactorize at the next
	// convenient point.
	Recommended
	// Required: a hard ceiling is exceeded; refactorize before the next
	// basis update.
	Required
)

// String returns the decision name used in diagnostics output.
func (d Decision) String() string {
	switch d {
	case NotNeeded:
		return "not-needed"
	case Recommended:
		return "recommended"
	case Required:
		return "required"
	default:
		return "unknown"
	}
}

// Limits holds the environment-owned refactorization ceilings. A
// non-positive value disables the corresponding limit.
type Limits struct {
	MaxEtaCount int   // hard ceiling on accumulated eta vectors
	MaxEtaBytes int64 // hard ceiling on eta-file memory, in bytes
	Interval    int64 // soft ceiling on iterations since the last refactor
}

// DefaultLimits returns the ceilings used when the environment does not
// override them.
func DefaultLimits() Limits {
	return Limits{
		MaxEtaCount: 200,
		MaxEtaBytes: 64 << 20,
		Interval:    100,
	}
}

// State is the subset of solver working state the policy consumes. The
// driver maintains it through NoteEta, NoteFtran and NoteRefactor.
type State struct {
	EtaCount     int   // eta vectors accumulated since the last refactor
	EtaBytes     int64 // memory those vectors occupy
	Iteration    int64 // current iteration
	LastRefactor int64 // iteration at which the basis was last refactored

	FtranCount    int64         // FTRAN samples since the last refactor
	FtranAverage  time.Duration // running average FTRAN time
	FtranBaseline time.Duration // average captured right after the last refactor
}

// NoteEta records one appended eta vector of the given size.
func (s *State) NoteEta(bytes int64) {
	s.EtaCount++
	s.EtaBytes += bytes
}

// NoteFtran folds one forward-transform timing sample into the running
// average.
func (s *State) NoteFtran(d time.Duration) {
	s.FtranCount++
	s.FtranAverage += (d - s.FtranAverage) / time.Duration(s.FtranCount)
}

// NoteRefactor records a completed refactorization at iteration iter:
// the eta bookkeeping restarts and the current FTRAN average becomes the
// degradation baseline for the next stretch of pivots.
func (s *State) NoteRefactor(iter int64) {
	s.EtaCount = 0
	s.EtaBytes = 0
	s.LastRefactor = iter
	s.FtranBaseline = s.FtranAverage
	s.FtranCount = 0
	s.FtranAverage = 0
}

// Decide evaluates the policy for one iteration. First match wins:
//
//  1. Required — eta count or eta memory exceeds its enabled ceiling.
//  2. Recommended — at least one FTRAN sample exists, a positive baseline
//     was captured, and the running average exceeds DegradationFactor
//     times that baseline.
//  3. Recommended — an interval is configured and more than that many
//     iterations have passed since the last refactor.
//  4. NotNeeded.
//
// A nil s or l yields NotNeeded: the policy is advisory only.
func Decide(s *State, l *Limits) Decision {
	if s == nil || l == nil {
		return NotNeeded
	}

	// 1) Hard ceilings on the eta file.
	if l.MaxEtaCount > 0 && s.EtaCount > l.MaxEtaCount {
		return Required
	}
	if l.MaxEtaBytes > 0 && s.EtaBytes > l.MaxEtaBytes {
		return Required
	}

	// 2) FTRAN degradation against the post-refactor baseline.
	if s.FtranCount > 0 && s.FtranBaseline > 0 &&
		float64(s.FtranAverage) > DegradationFactor*float64(s.FtranBaseline) {
		return Recommended
	}

	// 3) Iteration interval since the last refactor.
	if l.Interval > 0 && s.Iteration-s.LastRefactor > l.Interval {
		return Recommended
	}

	return NotNeeded
}
