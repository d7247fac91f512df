package descriptor

import (
	"fmt"
	"strings"
)

// InvalidDescriptorError reports every rule a single descriptor violates.
type InvalidDescriptorError struct {
	Module   string
	Source   string
	Problems []string
}

func (e *InvalidDescriptorError) Error() string {
	var b strings.Builder
	b.WriteString("invalid descriptor")
	if e.Module != "" {
		fmt.Fprintf(&b, " %q", e.Module)
	}
	if e.Source != "" {
		fmt.Fprintf(&b, " (%s)", e.Source)
	}
	b.WriteString(": ")
	b.WriteString(strings.Join(e.Problems, "; "))
	return b.String()
}
