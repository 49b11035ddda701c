// Package presets provides named looks that can be applied over the current settings.
package presets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/cursorglow/internal/settings"
)

//go:embed presets.yaml
var builtin []byte

// Preset is a partial settings record with a name.
type Preset struct {
	Name        string
	Description string

	values yaml.Node
}

func (p *Preset) UnmarshalYAML(value *yaml.Node) error {
	var head struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}
	if head.Name == "" {
		return fmt.Errorf("line %d: preset without a name", value.Line)
	}
	p.Name = head.Name
	p.Description = head.Description
	p.values = *value
	return nil
}

// Apply overlays the preset on base. Keys the preset does not mention keep
// their value from base. A preset that would produce an invalid record is
// rejected and base is returned unchanged.
func (p Preset) Apply(base settings.Record) (settings.Record, error) {
	rec := base
	if err := p.values.Decode(&rec); err != nil {
		return base, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if err := rec.Validate(); err != nil {
		return base, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return rec, nil
}

// Parse reads a YAML list of presets.
func Parse(data []byte) ([]Preset, error) {
	var list []Preset
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	return list, nil
}

// Builtin returns the presets shipped with the binary.
func Builtin() ([]Preset, error) {
	return Parse(builtin)
}

// Find looks a preset up by name.
func Find(list []Preset, name string) (Preset, bool) {
	for _, p := range list {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
