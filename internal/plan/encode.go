package plan

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteJSON writes the plan as indented JSON.
func (p *Plan) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan as json: %w", err)
	}
	return nil
}

// WriteYAML writes the plan as a YAML document.
func (p *Plan) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding plan as yaml: %w", err)
	}
	return enc.Close()
}

// Write encodes the plan in the named format, "json" or "yaml".
func (p *Plan) Write(w io.Writer, format string) error {
	switch format {
	case "json":
		return p.WriteJSON(w)
	case "yaml", "yml":
		return p.WriteYAML(w)
	}
	return fmt.Errorf("unsupported plan format %q", format)
}
