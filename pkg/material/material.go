package material

import (
	"fmt"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Kind identifies a scattering model
type Kind uint8

const (
	// KindLambertian scatters diffusely around the surface normal
	KindLambertian Kind = iota + 1
	// KindMetal reflects like a mirror
	KindMetal
)

// String returns the configuration name of the kind
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind converts a configuration name into a Kind
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lambertian", "diffuse":
		return KindLambertian, nil
	case "metal":
		return KindMetal, nil
	default:
		return 0, fmt.Errorf("unknown material type %q", name)
	}
}

// Material is a closed set of scattering models selected by Kind.
// Values are immutable and safe to share between shapes.
type Material struct {
	Kind   Kind
	Albedo core.Vec3 // Base color
}

// Scatter redirects rayIn at the hit point. It returns false when the ray is absorbed.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return scatterLambertian(m.Albedo, hit, sampler), true
	case KindMetal:
		return scatterMetal(m.Albedo, rayIn, hit)
	default:
		return ScatterResult{}, false
	}
}
