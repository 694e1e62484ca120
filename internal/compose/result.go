package compose

// Status says how a request was answered: a resolved composite or a
// synthesized fallback listing. Both are ordinary content; true faults
// travel as errors, never as a Status.
type Status int

const (
	// StatusResolved marks a composite built from a registry match.
	StatusResolved Status = iota
	// StatusFallback marks a self-describing listing for an unrecognized or
	// unmatched request.
	StatusFallback
)

// Resolution is the engine's answer to one request: markdown text plus how
// it was produced. Recoverable conditions (unknown topic, malformed URI)
// surface as StatusFallback, keeping them type-visible instead of thrown.
type Resolution struct {
	Status Status
	Text   string
}

// Resolved reports whether the resolution came from a registry match.
func (r Resolution) Resolved() bool {
	return r.Status == StatusResolved
}
