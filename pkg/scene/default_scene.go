package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// NewDefaultScene creates the reference scene: a large ground sphere with a diffuse
// sphere flanked by two metal spheres
func NewDefaultScene(aspectRatio float64) *Scene {
	s := New(aspectRatio)

	// Create materials
	ground := s.Materials.Add(material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	center := s.Materials.Add(material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	left := s.Materials.Add(material.NewMetal(core.NewVec3(0.8, 0.8, 0.8)))
	right := s.Materials.Add(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2)))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, left)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, right)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)

	return s
}
