package scene

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

const (
	gridColumns = 7
	gridRows    = 3
	gridRadius  = 0.35
	gridDepth   = -3.0
)

// NewSphereGridScene creates a wall of small spheres whose hue sweeps across the columns.
// Diffuse and metal spheres alternate like a checkerboard.
func NewSphereGridScene(aspectRatio float64) *Scene {
	s := New(aspectRatio)

	ground := s.Materials.Add(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(0, -101.5, gridDepth), 100, ground)

	for row := 0; row < gridRows; row++ {
		y := -1.5 + gridRadius + float64(row)*0.9
		for col := 0; col < gridColumns; col++ {
			x := float64(col-gridColumns/2) * 0.9
			hue := float64(col) * 360.0 / gridColumns
			albedo := oklchToRGB(0.7, 0.15, hue)

			var mat material.Material
			if (row+col)%2 == 0 {
				mat = material.NewLambertian(albedo)
			} else {
				mat = material.NewMetal(albedo)
			}
			s.AddSphere(core.NewVec3(x, y, gridDepth), gridRadius, s.Materials.Add(mat))
		}
	}

	return s
}
