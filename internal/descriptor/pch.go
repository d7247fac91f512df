package descriptor

import (
	"fmt"
	"strings"
)

// PCHMode governs whether a module may share precompiled-header state with
// other modules.
type PCHMode int

const (
	// PCHNone disables precompiled headers for the module.
	PCHNone PCHMode = iota
	// PCHUseExplicitOrShared uses the module's own PCH when it declares one
	// and otherwise falls back to a shared PCH.
	PCHUseExplicitOrShared
	// PCHUseShared always uses a shared PCH.
	PCHUseShared
	// PCHUseExplicit only uses the module's own PCH.
	PCHUseExplicit
)

var pchNames = map[PCHMode]string{
	PCHNone:                "none",
	PCHUseExplicitOrShared: "use_explicit_or_shared_pch",
	PCHUseShared:           "use_shared_pchs",
	PCHUseExplicit:         "use_explicit_pch",
}

// pchAliases maps every accepted spelling, lowercased, to its mode. The
// CamelCase names used by Unreal-style rules files are accepted so that
// descriptors can be ported without rewriting the enum values.
var pchAliases = map[string]PCHMode{
	"":                            PCHNone,
	"none":                        PCHNone,
	"nopchs":                      PCHNone,
	"use_explicit_or_shared_pch":  PCHUseExplicitOrShared,
	"use_explicit_or_shared_pchs": PCHUseExplicitOrShared,
	"useexplicitorsharedpch":      PCHUseExplicitOrShared,
	"useexplicitorsharedpchs":     PCHUseExplicitOrShared,
	"use_shared_pchs":             PCHUseShared,
	"use_shared_pch":              PCHUseShared,
	"usesharedpchs":               PCHUseShared,
	"use_explicit_pch":            PCHUseExplicit,
	"useexplicitpch":              PCHUseExplicit,
}

// ParsePCHMode converts a textual PCH mode into a PCHMode. Matching is
// case-insensitive and an empty string yields PCHNone.
func ParsePCHMode(s string) (PCHMode, error) {
	mode, ok := pchAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return PCHNone, fmt.Errorf("unknown pch mode %q", s)
	}
	return mode, nil
}

// String returns the canonical snake_case name of the mode.
func (m PCHMode) String() string {
	if name, ok := pchNames[m]; ok {
		return name
	}
	return fmt.Sprintf("PCHMode(%d)", int(m))
}

// SharesPCH reports whether the mode makes the module eligible for a shared
// precompiled header.
func (m PCHMode) SharesPCH() bool {
	return m == PCHUseExplicitOrShared || m == PCHUseShared
}

// MarshalText implements encoding.TextMarshaler.
func (m PCHMode) MarshalText() ([]byte, error) {
	if _, ok := pchNames[m]; !ok {
		return nil, fmt.Errorf("invalid pch mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PCHMode) UnmarshalText(text []byte) error {
	mode, err := ParsePCHMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
