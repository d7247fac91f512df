package registry

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned by Register once the registry has been frozen.
var ErrFrozen = errors.New("registry is frozen")

// DuplicateModuleError reports a second descriptor with an already registered name.
type DuplicateModuleError struct {
	Module string
	// Sources lists where the first and the rejected descriptor came from,
	// when known.
	Sources []string
}

func (e *DuplicateModuleError) Error() string {
	if len(e.Sources) == 2 && e.Sources[0] != "" && e.Sources[1] != "" {
		return fmt.Sprintf("duplicate module %q: declared in %s and %s", e.Module, e.Sources[0], e.Sources[1])
	}
	return fmt.Sprintf("duplicate module %q", e.Module)
}

// UnknownModuleError reports a lookup of a name that was never registered.
type UnknownModuleError struct {
	Module string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %q", e.Module)
}
