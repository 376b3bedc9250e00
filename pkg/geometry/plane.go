package geometry

import (
	"math"

	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon is the threshold below which a ray counts as parallel to a
// plane and reports a miss.
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	Material *material.Material

	// Tangent basis for the surface parameterization.
	tangent   core.Vec3
	bitangent core.Vec3
}

// NewPlane creates a new plane. The normal is normalized unconditionally.
func NewPlane(point, normal core.Vec3, mat *material.Material) *Plane {
	n := normal.Normalize()

	// Pick a helper axis not parallel to the normal to build the basis
	helper := core.NewVec3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		helper = core.NewVec3(0, 1, 0)
	}
	tangent := helper.Cross(n).Normalize()
	bitangent := n.Cross(tangent)

	return &Plane{
		Point:     point,
		Normal:    n,
		Material:  mat,
		tangent:   tangent,
		bitangent: bitangent,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane is a normal miss, not an error
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	rel := hitPoint.Subtract(p.Point)

	rec := &material.HitRecord{
		Point:    hitPoint,
		T:        t,
		U:        rel.Dot(p.tangent),
		V:        rel.Dot(p.bitangent),
		Material: p.Material,
	}
	rec.SetFaceNormal(ray, p.Normal)
	return rec, true
}
