package domain

// ScrollThreshold is how close to the document bottom, in pixels, the
// viewport must be before the next page loads.
const ScrollThreshold = 200

// Cursor is the pagination state of the listing: the server-provided next
// page (nil past the last page), the single in-flight guard, the keyword the
// rendered results belong to, and the search generation used to discard
// responses that a newer search has superseded.
type Cursor struct {
	NextPage   *int
	InFlight   bool
	Keyword    string
	Generation uint64
}

// WithinLoadDistance reports whether the scroll position has come within
// threshold pixels of the document bottom.
func WithinLoadDistance(scrollY, viewportHeight, documentHeight, threshold int) bool {
	return scrollY+viewportHeight >= documentHeight-threshold
}
