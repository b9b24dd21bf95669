package renderer

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// MockShape implements geometry.Shape for testing
type MockShape struct {
	hitFn func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	calls int
}

func (m *MockShape) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	m.calls++
	return m.hitFn(ray, tMin, tMax)
}

// MockScene implements Scene for testing
type MockScene struct {
	camera    *Camera
	world     geometry.Shape
	materials *material.Palette
}

func (m MockScene) GetCamera() *Camera              { return m.camera }
func (m MockScene) GetWorld() geometry.Shape        { return m.world }
func (m MockScene) GetMaterials() *material.Palette { return m.materials }

// recordingLogger captures log lines
type recordingLogger struct {
	lines []string
	debug []string
}

func (r *recordingLogger) Printf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...interface{}) {
	r.debug = append(r.debug, fmt.Sprintf(format, args...))
}

func newTestRaytracer(world geometry.Shape, palette *material.Palette, sampler core.Sampler) *Raytracer {
	scene := MockScene{camera: NewCamera(2.0), world: world, materials: palette}
	rt := NewRaytracer(scene, 4, 2, sampler)
	rt.SetLogger(&recordingLogger{})
	return rt
}

func assertColor(t *testing.T, expected, got core.Vec3) {
	t.Helper()
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected color %v, got %v", expected, got)
	}
}

func TestRaytracer_DepthZeroIsBlack(t *testing.T) {
	shape := &MockShape{hitFn: func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
		return &material.HitRecord{T: 1, Normal: core.NewVec3(0, 1, 0)}, true
	}}
	rt := newTestRaytracer(shape, material.NewPalette(), core.NewSequenceSampler(0.5))

	for _, depth := range []int{0, -3} {
		color := rt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), depth)
		assertColor(t, core.NewVec3(0, 0, 0), color)
	}

	if shape.calls != 0 {
		t.Errorf("Expected no intersection tests at depth 0, got %d", shape.calls)
	}
}

func TestRaytracer_QueriesWithEpsilonAndInfinity(t *testing.T) {
	shape := &MockShape{hitFn: func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
		if tMin != MinHitDistance {
			t.Errorf("Expected tMin %f, got %f", MinHitDistance, tMin)
		}
		if !math.IsInf(tMax, 1) {
			t.Errorf("Expected tMax +Inf, got %f", tMax)
		}
		return nil, false
	}}
	rt := newTestRaytracer(shape, material.NewPalette(), core.NewSequenceSampler(0.5))
	rt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 5)

	if shape.calls != 1 {
		t.Errorf("Expected exactly one intersection test, got %d", shape.calls)
	}
}

func TestBackgroundColor_Gradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 5, 0), BackgroundTop},
		{"straight down", core.NewVec3(0, -2, 0), BackgroundBottom},
		{"horizon", core.NewVec3(1, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertColor(t, tt.expected, BackgroundColor(core.NewRay(core.NewVec3(3, 3, 3), tt.direction)))
		})
	}
}

func TestRaytracer_MissReturnsBackgroundRegardlessOfScene(t *testing.T) {
	miss := func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) { return nil, false }
	empty := newTestRaytracer(geometry.NewList(), material.NewPalette(), core.NewSequenceSampler(0.5))
	mocked := newTestRaytracer(&MockShape{hitFn: miss}, material.NewPalette(), core.NewSequenceSampler(0.5))

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		dir := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)

		a := empty.RayColor(ray, 10)
		b := mocked.RayColor(ray, 1)
		if !a.Equals(b) {
			t.Fatalf("Background differs between scenes: %v vs %v", a, b)
		}

		// The color must lie on the white to sky-blue segment at t = 0.5*(y+1)
		tv := 0.5 * (dir.Normalize().Y + 1.0)
		assertColor(t, BackgroundBottom.Lerp(BackgroundTop, tv), a)
	}
}

func TestRaytracer_MirrorReflectsSky(t *testing.T) {
	palette := material.NewPalette()
	mirror := palette.Add(material.NewMetal(core.NewVec3(0.5, 0.5, 0.5)))
	world := geometry.NewList(geometry.NewSphere(core.NewVec3(0, -101, 0), 100, mirror))
	rt := newTestRaytracer(world, palette, core.NewSequenceSampler(0.5))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	// One bounce budget: the reflected ray has no depth left
	assertColor(t, core.NewVec3(0, 0, 0), rt.RayColor(ray, 1))

	// Two bounces: albedo times the sky straight up
	assertColor(t, core.NewVec3(0.25, 0.35, 0.5), rt.RayColor(ray, 2))
}

func TestRaytracer_AbsorptionIsBlack(t *testing.T) {
	palette := material.NewPalette()
	mirror := palette.Add(material.NewMetal(core.NewVec3(1, 1, 1)))

	// A hit record whose normal points along the ray makes the reflection go inward
	shape := &MockShape{hitFn: func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
		return &material.HitRecord{T: 1, Point: ray.At(1), Normal: ray.Direction.Normalize(), Material: mirror}, true
	}}
	rt := newTestRaytracer(shape, palette, core.NewSequenceSampler(0.5))

	color := rt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 10)
	assertColor(t, core.NewVec3(0, 0, 0), color)
	if shape.calls != 1 {
		t.Errorf("Absorbed ray should not recurse, got %d intersection tests", shape.calls)
	}
}

func TestRaytracer_UnknownMaterialIsBlack(t *testing.T) {
	world := geometry.NewList(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, material.Handle(9)))
	rt := newTestRaytracer(world, material.NewPalette(), core.NewSequenceSampler(0.5))

	color := rt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 5)
	assertColor(t, core.NewVec3(0, 0, 0), color)
}

func TestRaytracer_RecursionBoundedByDepth(t *testing.T) {
	palette := material.NewPalette()
	diffuse := palette.Add(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	// Every ray hits, so only the depth budget ends the path
	shape := &MockShape{hitFn: func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
		return &material.HitRecord{T: 1, Point: ray.At(1), Normal: ray.Direction.Normalize().Negate(), Material: diffuse}, true
	}}
	rt := newTestRaytracer(shape, palette, core.NewRandomSampler(rand.New(rand.NewSource(42))))

	for _, depth := range []int{1, 5, 20} {
		shape.calls = 0
		color := rt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), depth)
		assertColor(t, core.NewVec3(0, 0, 0), color)
		if shape.calls != depth {
			t.Errorf("depth %d: expected %d intersection tests, got %d", depth, depth, shape.calls)
		}
	}
}

func TestRaytracer_RenderDeterministic(t *testing.T) {
	build := func() *Raytracer {
		palette := material.NewPalette()
		ground := palette.Add(material.NewLambertian(core.NewVec3(0.8, 0.8, 0)))
		metal := palette.Add(material.NewMetal(core.NewVec3(0.8, 0.6, 0.2)))
		world := geometry.NewList(
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
			geometry.NewSphere(core.NewVec3(0.5, 0, -1), 0.5, metal),
		)
		rt := newTestRaytracer(world, palette, core.NewRandomSampler(rand.New(rand.NewSource(42))))
		rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 4, MaxDepth: 5})
		return rt
	}

	first, stats := build().Render()
	second, _ := build().Render()

	if first.Width != 4 || first.Height != 2 {
		t.Fatalf("Unexpected image size %dx%d", first.Width, first.Height)
	}
	for i := range first.Pixels {
		if !first.Pixels[i].Equals(second.Pixels[i]) {
			t.Fatalf("Pixel %d differs between runs: %v vs %v", i, first.Pixels[i], second.Pixels[i])
		}
	}

	if stats.TotalPixels != 8 || stats.TotalSamples != 32 || stats.AverageSamples != 4 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestRaytracer_RenderTopRowFirst(t *testing.T) {
	// Empty world: each pixel shows only the sky, which brightens towards blue upwards
	rt := newTestRaytracer(geometry.NewList(), material.NewPalette(), core.NewSequenceSampler(0))
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 1, MaxDepth: 1})

	img, _ := rt.Render()

	// Sampler always returns 0, so the top row uses v = 1 and the bottom row v = 0
	top := BackgroundColor(NewCamera(2.0).GetRay(0, 1))
	bottom := BackgroundColor(NewCamera(2.0).GetRay(0, 0))
	assertColor(t, top, img.At(0, 0))
	assertColor(t, bottom, img.At(0, 1))
}

func TestRaytracer_ReportsProgress(t *testing.T) {
	rt := newTestRaytracer(geometry.NewList(), material.NewPalette(), core.NewSequenceSampler(0.5))
	logger := &recordingLogger{}
	rt.SetLogger(logger)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 1, MaxDepth: 1})

	rt.Render()

	if len(logger.debug) != 2 {
		t.Fatalf("Expected one progress line per scanline, got %d", len(logger.debug))
	}
	if !strings.Contains(logger.debug[1], "100%") {
		t.Errorf("Last progress line should report 100%%, got %q", logger.debug[1])
	}
}

func TestRaytracer_NaNSphereLeavesSkyVisible(t *testing.T) {
	palette := material.NewPalette()
	diffuse := palette.Add(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	world := geometry.NewList(geometry.NewSphere(core.NewVec3(0, 0, -1), math.NaN(), diffuse))
	rt := newTestRaytracer(world, palette, core.NewSequenceSampler(0.5))

	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	assertColor(t, BackgroundTop, rt.RayColor(up, 5))
}
