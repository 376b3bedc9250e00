package geometry

import (
	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection with t in (tMin, tMax], or
// (nil, false) when the ray misses.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
