package domain

// Verdict is the outcome of a cache invalidation run.
type Verdict struct {
	Invalidated bool
	Reason      string
}

// Validated returns a verdict that keeps the cache.
func Validated() Verdict {
	return Verdict{}
}

// Invalidated returns a verdict that discards the cache for the given reason.
func Invalidated(reason string) Verdict {
	return Verdict{Invalidated: true, Reason: reason}
}

// String returns a short human-readable form of the verdict.
func (v Verdict) String() string {
	if !v.Invalidated {
		return "validated"
	}
	return "invalidated: " + v.Reason
}
