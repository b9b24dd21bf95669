package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

const (
	// MinHitDistance keeps bounced rays from re-hitting the surface they left
	MinHitDistance = 0.001
)

var (
	// BackgroundBottom is the sky color for rays pointing straight down
	BackgroundBottom = core.NewVec3(1.0, 1.0, 1.0)
	// BackgroundTop is the sky color straight up
	BackgroundTop = core.NewVec3(0.5, 0.7, 1.0)
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetMaterials() *material.Palette
}

// Raytracer handles the rendering process. It is single threaded and
// draws every random number from its sampler.
type Raytracer struct {
	scene   Scene
	width   int
	height  int
	config  SamplingConfig
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int, sampler core.Sampler) *Raytracer {
	return &Raytracer{
		scene:   scene,
		width:   width,
		height:  height,
		config:  DefaultSamplingConfig(),
		sampler: sampler,
		logger:  NewDefaultLogger(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetLogger replaces the progress logger
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	rt.logger = logger
}

// BackgroundColor returns the sky gradient seen by a ray that hits nothing
func BackgroundColor(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)
	return BackgroundBottom.Lerp(BackgroundTop, t)
}

// RayColor returns the light arriving along r, allowing at most depth bounces
func (rt *Raytracer) RayColor(r core.Ray, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := rt.scene.GetWorld().Hit(r, MinHitDistance, math.Inf(1))
	if !isHit {
		return BackgroundColor(r)
	}

	mat, ok := rt.scene.GetMaterials().Get(hit.Material)
	if !ok {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := mat.Scatter(r, *hit, rt.sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1))
}

// samplePixel averages SamplesPerPixel jittered samples for column i of scanline j,
// where scanline 0 is the bottom of the image
func (rt *Raytracer) samplePixel(camera *Camera, i, j int) core.Vec3 {
	var ps PixelStats
	uScale := 1.0 / float64(max(1, rt.width-1))
	vScale := 1.0 / float64(max(1, rt.height-1))

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + rt.sampler.Get1D()) * uScale
		v := (float64(j) + rt.sampler.Get1D()) * vScale

		ray := camera.GetRay(u, v)
		ps.AddSample(rt.RayColor(ray, rt.config.MaxDepth))
	}

	return ps.GetColor()
}

// Render traces every pixel and returns the averaged linear colors.
// Scanlines are traced from the top of the image down.
func (rt *Raytracer) Render() (*Image, RenderStats) {
	img := NewImage(rt.width, rt.height)
	camera := rt.scene.GetCamera()

	for j := rt.height - 1; j >= 0; j-- {
		rt.reportProgress(rt.height - j)
		for i := 0; i < rt.width; i++ {
			img.Set(i, rt.height-1-j, rt.samplePixel(camera, i, j))
		}
	}

	totalPixels := rt.width * rt.height
	stats := RenderStats{
		TotalPixels:     totalPixels,
		TotalSamples:    totalPixels * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
	}
	if totalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(totalPixels)
	}

	return img, stats
}

// reportProgress logs the percentage of scanlines started so far
func (rt *Raytracer) reportProgress(scanline int) {
	percent := scanline * 100 / rt.height
	if leveled, ok := rt.logger.(core.LevelLogger); ok {
		leveled.Debugf("Progress: [%d%%] scanline %d/%d", percent, scanline, rt.height)
		return
	}
	rt.logger.Printf("\rProgress: [%d%%]", percent)
}
