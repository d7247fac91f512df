// Package limits bounds the size of a resolution run so that pathological
// input fails fast with GraphTooLargeError instead of exhausting memory.
package limits

import "fmt"

const (
	DefaultMaxModules = 10_000
	DefaultMaxEdges   = 100_000
)

// Limits caps the number of modules and edges a single run accepts. A zero
// field disables that check.
type Limits struct {
	MaxModules int
	MaxEdges   int
}

// Default returns the limits used when the caller configures none.
func Default() Limits {
	return Limits{MaxModules: DefaultMaxModules, MaxEdges: DefaultMaxEdges}
}

// CheckModules returns a *GraphTooLargeError when n exceeds MaxModules.
func (l Limits) CheckModules(n int) error {
	if l.MaxModules > 0 && n > l.MaxModules {
		return &GraphTooLargeError{What: "modules", Count: n, Limit: l.MaxModules}
	}
	return nil
}

// CheckEdges returns a *GraphTooLargeError when n exceeds MaxEdges.
func (l Limits) CheckEdges(n int) error {
	if l.MaxEdges > 0 && n > l.MaxEdges {
		return &GraphTooLargeError{What: "edges", Count: n, Limit: l.MaxEdges}
	}
	return nil
}

// GraphTooLargeError reports that a run exceeded a configured size limit.
type GraphTooLargeError struct {
	What  string
	Count int
	Limit int
}

func (e *GraphTooLargeError) Error() string {
	return fmt.Sprintf("graph too large: %d %s exceeds the limit of %d", e.Count, e.What, e.Limit)
}
