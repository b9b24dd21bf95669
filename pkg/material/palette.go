package material

import "fmt"

// Handle is a stable index into a Palette
type Handle int

// Palette owns every material of a scene. Shapes refer to materials by Handle,
// so one material can be shared by many shapes. A Palette is filled during
// scene setup and only read while rendering.
type Palette struct {
	materials []Material
	names     map[string]Handle
}

// NewPalette creates an empty palette
func NewPalette() *Palette {
	return &Palette{names: make(map[string]Handle)}
}

// Add stores a material and returns its handle
func (p *Palette) Add(m Material) Handle {
	p.materials = append(p.materials, m)
	return Handle(len(p.materials) - 1)
}

// AddNamed stores a material under a unique name
func (p *Palette) AddNamed(name string, m Material) (Handle, error) {
	if _, exists := p.names[name]; exists {
		return 0, fmt.Errorf("duplicate material name %q", name)
	}
	h := p.Add(m)
	p.names[name] = h
	return h, nil
}

// Lookup finds a named material
func (p *Palette) Lookup(name string) (Handle, bool) {
	h, ok := p.names[name]
	return h, ok
}

// Get resolves a handle. It returns false for handles this palette never issued.
func (p *Palette) Get(h Handle) (Material, bool) {
	if h < 0 || int(h) >= len(p.materials) {
		return Material{}, false
	}
	return p.materials[h], true
}

// Len returns the number of stored materials
func (p *Palette) Len() int {
	return len(p.materials)
}
