package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// It is built once and treated as read-only while rendering.
type Scene struct {
	Camera    *renderer.Camera
	World     *geometry.List    // Objects in the scene
	Materials *material.Palette // Materials referenced by the objects
}

// New creates an empty scene viewed by a camera with the given aspect ratio
func New(aspectRatio float64) *Scene {
	return &Scene{
		Camera:    renderer.NewCamera(aspectRatio),
		World:     geometry.NewList(),
		Materials: material.NewPalette(),
	}
}

// AddSphere adds a sphere using a material already stored in the palette
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Handle) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.World.Add(sphere)
	return sphere
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the shapes as a single hittable
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetMaterials returns the material palette
func (s *Scene) GetMaterials() *material.Palette {
	return s.Materials
}
