package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// FromConfig builds the configured scene: the inline description when present,
// otherwise the named built-in scene
func FromConfig(cfg *config.Config) (*Scene, error) {
	if cfg.Scene == nil {
		return Builtin(cfg.SceneName, cfg.Image.AspectRatio)
	}
	return FromDescription(cfg.Scene, cfg.Image.AspectRatio)
}

// FromDescription builds a scene of spheres and named materials
func FromDescription(desc *config.SceneConfig, aspectRatio float64) (*Scene, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	s := New(aspectRatio)
	for _, m := range desc.Materials {
		kind, err := material.ParseKind(m.Type)
		if err != nil {
			return nil, err
		}
		mat := material.Material{Kind: kind, Albedo: toVec3(m.Albedo)}
		if _, err := s.Materials.AddNamed(m.Name, mat); err != nil {
			return nil, err
		}
	}

	for i, sp := range desc.Spheres {
		handle, ok := s.Materials.Lookup(sp.Material)
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, sp.Material)
		}
		s.AddSphere(toVec3(sp.Center), sp.Radius, handle)
	}

	return s, nil
}

func toVec3(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
