package solve

import "errors"

// ErrNilSession is returned by Session.Init when the session handle
// itself is absent. It is the only failure Init can produce: every other
// missing collaborator just disables its feature.
// Check with errors.Is(err, solve.ErrNilSession).
var ErrNilSession = errors.New("solve: nil session handle")
