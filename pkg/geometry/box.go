package geometry

import (
	"math"

	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
)

// Box represents an axis-aligned box defined by a center and half-extents
type Box struct {
	Center   core.Vec3 // Center point of the box
	HalfSize core.Vec3 // Half-extent along each axis
	Material *material.Material
}

// NewBox creates a new axis-aligned box.
// HalfSize is the distance from the center to each face, so a half-size of
// (1,1,1) creates a 2x2x2 box.
func NewBox(center, halfSize core.Vec3, mat *material.Material) *Box {
	return &Box{Center: center, HalfSize: halfSize, Material: mat}
}

// Hit tests the ray against the box using the slab method.
//
// Division by a zero direction component intentionally produces IEEE
// infinities (and NaN when the origin lies exactly on a slab plane); the
// comparisons below handle both correctly, so zero components must not be
// special-cased.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	boxMin := b.Center.Subtract(b.HalfSize)
	boxMax := b.Center.Add(b.HalfSize)

	tEntry := math.Inf(-1)
	tExit := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var origin, direction, slabMin, slabMax float64
		switch axis {
		case 0:
			origin, direction = ray.Origin.X, ray.Direction.X
			slabMin, slabMax = boxMin.X, boxMax.X
		case 1:
			origin, direction = ray.Origin.Y, ray.Direction.Y
			slabMin, slabMax = boxMin.Y, boxMax.Y
		case 2:
			origin, direction = ray.Origin.Z, ray.Direction.Z
			slabMin, slabMax = boxMin.Z, boxMax.Z
		}

		invDirection := 1.0 / direction
		t0 := (slabMin - origin) * invDirection
		t1 := (slabMax - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		// NaN comparisons are false, so a degenerate slab leaves the
		// running interval untouched.
		if t0 > tEntry {
			tEntry = t0
		}
		if t1 < tExit {
			tExit = t1
		}
	}

	if tExit < tEntry || tExit < tMin {
		return nil, false
	}

	// Entry time if it is in front of the ray, else the exit time
	// (handles a ray starting inside the box).
	t := tEntry
	if t < tMin {
		t = tExit
	}
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	normal := b.outwardNormal(point)
	u, v := b.uv(point, normal)

	rec := &material.HitRecord{
		Point:    point,
		T:        t,
		U:        u,
		V:        v,
		Material: b.Material,
	}
	rec.SetFaceNormal(ray, normal)
	return rec, true
}

// outwardNormal derives the face normal from the hit point by choosing the
// axis with the largest box-local coordinate magnitude. Ties break in axis
// order: x, then y, then z.
func (b *Box) outwardNormal(point core.Vec3) core.Vec3 {
	local := b.localCoords(point)

	absX := math.Abs(local.X)
	absY := math.Abs(local.Y)
	absZ := math.Abs(local.Z)

	if absX >= absY && absX >= absZ {
		if local.X > 0 {
			return core.NewVec3(1, 0, 0)
		}
		return core.NewVec3(-1, 0, 0)
	}
	if absY >= absZ {
		if local.Y > 0 {
			return core.NewVec3(0, 1, 0)
		}
		return core.NewVec3(0, -1, 0)
	}
	if local.Z > 0 {
		return core.NewVec3(0, 0, 1)
	}
	return core.NewVec3(0, 0, -1)
}

// uv projects the two non-dominant axes of the box-local coordinate,
// normalized by the half-extents, into [0,1]
func (b *Box) uv(point, normal core.Vec3) (float64, float64) {
	local := b.localCoords(point)

	switch {
	case normal.X != 0:
		return (local.Z + 1) * 0.5, (local.Y + 1) * 0.5
	case normal.Y != 0:
		return (local.X + 1) * 0.5, (local.Z + 1) * 0.5
	default:
		return (local.X + 1) * 0.5, (local.Y + 1) * 0.5
	}
}

// localCoords maps a point on the box surface into [-1,1] per axis
func (b *Box) localCoords(point core.Vec3) core.Vec3 {
	rel := point.Subtract(b.Center)
	return core.NewVec3(rel.X/b.HalfSize.X, rel.Y/b.HalfSize.Y, rel.Z/b.HalfSize.Z)
}
