package render

import (
	"fmt"
	"sort"

	"github.com/milk9111/toolkit2d/ecs/component"
	"github.com/milk9111/toolkit2d/prefabs"
)

// MaterialLibrary owns materials by name. Entities hold pointers into it, so
// a material must outlive every entity that references it.
type MaterialLibrary struct {
	materials map[string]*component.Material
}

// NewMaterialLibrary creates an empty library.
func NewMaterialLibrary() *MaterialLibrary {
	return &MaterialLibrary{materials: make(map[string]*component.Material)}
}

// Register adds or replaces a material under its name.
func (l *MaterialLibrary) Register(m *component.Material) {
	if l == nil || m == nil || m.Name == "" {
		return
	}
	l.materials[m.Name] = m
}

// Get returns a material by name.
func (l *MaterialLibrary) Get(name string) (*component.Material, bool) {
	if l == nil || name == "" {
		return nil, false
	}
	m, ok := l.materials[name]
	return m, ok
}

// Names returns registered material names in sorted order.
func (l *MaterialLibrary) Names() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.materials))
	for name := range l.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadMaterialLibrary builds a library from a materials spec. Materials
// without a colour default to opaque white.
func LoadMaterialLibrary(spec prefabs.MaterialsSpec) (*MaterialLibrary, error) {
	lib := NewMaterialLibrary()
	for i, ms := range spec.Materials {
		if ms.Name == "" {
			return nil, fmt.Errorf("material %d: missing name", i)
		}
		if _, dup := lib.materials[ms.Name]; dup {
			return nil, fmt.Errorf("material %q: defined twice", ms.Name)
		}
		m := &component.Material{Name: ms.Name, Color: defaultMaterialColor}
		if ms.Color != "" {
			c, err := ParseColor(ms.Color)
			if err != nil {
				return nil, fmt.Errorf("material %q: %w", ms.Name, err)
			}
			m.Color = c
		}
		if ms.Image != "" {
			img, err := LoadImage(ms.Image)
			if err != nil {
				return nil, fmt.Errorf("material %q: %w", ms.Name, err)
			}
			m.Image = img
		}
		lib.Register(m)
	}
	return lib, nil
}
