package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// NewMetal creates a mirror-like material
func NewMetal(albedo core.Vec3) Material {
	return Material{Kind: KindMetal, Albedo: albedo}
}

// scatterMetal mirrors the incoming direction about the normal.
// Reflections that would point into the surface are absorbed.
func scatterMetal(albedo core.Vec3, rayIn core.Ray, hit HitRecord) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	scattered := core.NewRay(hit.Point, reflected)

	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: albedo,
	}, true
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
