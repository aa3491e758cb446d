package edit

// Guard is the optimistic-concurrency precondition attached to one
// mutating call. It is built immediately before submission from the
// most recent read and discarded after.
type Guard struct {
	ExpectedRevisionID string
	Bypass             bool
}

// NewGuard requires the document to still be at revision rev when the
// mutation lands.
func NewGuard(rev string) Guard {
	return Guard{ExpectedRevisionID: rev}
}

// Bypassed skips the revision check. Concurrent edits may be silently
// overwritten; callers opt into this explicitly.
func Bypassed() Guard {
	return Guard{Bypass: true}
}

// Required returns the revision to demand and whether to demand one.
func (g Guard) Required() (string, bool) {
	if g.Bypass || g.ExpectedRevisionID == "" {
		return "", false
	}
	return g.ExpectedRevisionID, true
}
