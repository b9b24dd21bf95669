package material

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo)
	sampler := core.NewSequenceSampler(0.5)

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	// incident (0, -1, -1) normalized reflects to (0, -0.707, 0.707)
	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction

	tolerance := 1e-10
	if actual.Subtract(expected).Length() > tolerance {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}

	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_ReflectionLaw(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2))
	normal := core.NewVec3(1, 2, -0.5).Normalize()
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal}

	directions := []core.Vec3{
		core.NewVec3(-1, -1, 0),
		core.NewVec3(0.3, -4, 2),
		core.NewVec3(-2, -0.1, 0.7),
	}

	for _, dir := range directions {
		rayIn := core.NewRay(dir.Negate(), dir)
		scatter, didScatter := metal.Scatter(rayIn, hit, nil)
		if !didScatter {
			t.Fatalf("Expected reflection for direction %v", dir)
		}

		incoming := dir.Normalize().Dot(normal)
		outgoing := scatter.Scattered.Direction.Dot(normal)
		if math.Abs(outgoing+incoming) > 1e-9 {
			t.Errorf("Angle of incidence %f != angle of reflection %f", -incoming, outgoing)
		}
		if math.Abs(scatter.Scattered.Direction.Length()-1) > 1e-9 {
			t.Errorf("Reflected direction should be unit length, got %f", scatter.Scattered.Direction.Length())
		}
	}
}

func TestMetal_AbsorbsInwardReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8))
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	tests := []struct {
		name      string
		direction core.Vec3
	}{
		{"ray leaving the surface", core.NewVec3(0, 0, 1)},
		{"grazing ray", core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, didScatter := metal.Scatter(core.NewRay(core.NewVec3(0, 0, 0), tt.direction), hit, nil)
			if didScatter {
				t.Error("Expected the ray to be absorbed")
			}
		})
	}
}

func TestReflect(t *testing.T) {
	v := core.NewVec3(1, -1, 0)
	n := core.NewVec3(0, 1, 0)
	if got := Reflect(v, n); !got.Equals(core.NewVec3(1, 1, 0)) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}
