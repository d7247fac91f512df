package resolver

import (
	"fmt"
	"strings"
)

// CyclicDependencyError reports a cycle among static edges. Path starts and
// ends with the same module, e.g. [A B A].
type CyclicDependencyError struct {
	Path []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency: %s", strings.Join(e.Path, " -> "))
}

// Modules returns the distinct modules on the cycle.
func (e *CyclicDependencyError) Modules() []string {
	if len(e.Path) < 2 {
		return e.Path
	}
	return e.Path[:len(e.Path)-1]
}
