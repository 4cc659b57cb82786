package interfaces

// FixtureGenerator produces fabricated display data for gaps the backend
// leaves: placeholder owner attribution and decorative page-view counts.
// Implementations must be substitutable with a deterministic seed in
// tests; nothing produced here is a real metric.
type FixtureGenerator interface {
	// PlaceholderOwners synthesizes count owner names from a fixed pool
	PlaceholderOwners(count int) []string

	// PageViews returns a decorative page-view count with no backing metric
	PageViews() int
}
