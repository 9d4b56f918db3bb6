package pipeline

// Options configures a single parse. It is immutable once a Context is
// constructed from it — stages only read it (§3 "Options").
type Options struct {
	// MaxElements fails the parse with ElementLimitExceeded if the
	// document's element count exceeds this. 0 (or any negative value)
	// means no limit.
	MaxElements int
	// MinTextLength is reserved for readerable-style length checks; see
	// spec.md §9 Open Questions — the core never fails on it directly.
	MinTextLength int
	// NTopCandidates bounds how many scored candidates participate in
	// consensus-ancestor promotion during Article extraction.
	NTopCandidates int
	// KeepClasses disables CleanClassAttributes entirely when true.
	KeepClasses bool
	// PreservedClasses lists class tokens kept when KeepClasses is false.
	PreservedClasses []string
	// LinkDensityBias is an additive modifier to the link-density penalty.
	// Reserved: no observed call site exercises it; defaults to 0.
	LinkDensityBias float64
	// UseJSONLD enables JSON-LD metadata extraction.
	UseJSONLD bool
}

// DefaultOptions returns the §3 Options table defaults.
func DefaultOptions() Options {
	return Options{
		MaxElements:      0,
		MinTextLength:    500,
		NTopCandidates:   5,
		KeepClasses:      false,
		PreservedClasses: []string{"page"},
		LinkDensityBias:  0,
		UseJSONLD:        true,
	}
}
