package page

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Preset is a named canvas size offered when creating a new board.
type Preset struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Validate checks that the preset can back a canvas.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("preset dimensions must be positive")
	}
	return nil
}

// SaveToFile saves the preset to a JSON file.
func (p Preset) SaveToFile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a preset from a JSON file.
func LoadFromFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, err
	}

	if err := p.Validate(); err != nil {
		return Preset{}, fmt.Errorf("invalid preset: %w", err)
	}

	return p, nil
}

// DefaultPreset is the canvas size used when nothing else is chosen.
const DefaultPreset = "HD Whiteboard"

// Registry of known canvas presets
var registry = make(map[string]Preset)

// Register adds a preset to the registry, replacing any same-named one.
func Register(p Preset) {
	registry[p.Name] = p
}

// Get returns a preset by name.
func Get(name string) (Preset, bool) {
	p, ok := registry[name]
	return p, ok
}

// List returns all registered preset names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// Register built-in canvas sizes
	Register(Preset{Name: DefaultPreset, Width: 1920, Height: 1080})
	Register(Preset{Name: "4K Whiteboard", Width: 3840, Height: 2160})
	Register(Preset{Name: "Square Notes", Width: 2048, Height: 2048})
	Register(Preset{Name: "A4 Portrait", Width: 1240, Height: 1754})
	Register(Preset{Name: "A4 Landscape", Width: 1754, Height: 1240})
}
