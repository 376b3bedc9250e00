package scene

import (
	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/geometry"
	"github.com/dglen/go-whitted-raytracer/pkg/lights"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
	"github.com/dglen/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. Once construction
// completes it is treated as immutable: the renderer only ever reads it, so
// any number of concurrent ray evaluations may share it.
type Scene struct {
	Shapes []geometry.Shape
	Lights []lights.PointLight

	Ambient core.Vec3 // Constant ambient light

	// Background gradient, interpolated on the vertical component of the
	// ray direction. Equal colors give a constant background.
	TopColor    core.Vec3
	BottomColor core.Vec3

	Camera renderer.CameraConfig
}

// New creates an empty scene with a dark blue constant background
func New() *Scene {
	background := core.NewVec3(0.1, 0.1, 0.2)
	return &Scene{
		Ambient:     core.NewVec3(0.1, 0.1, 0.1),
		TopColor:    background,
		BottomColor: background,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// NearestHit scans every shape and returns the closest intersection with
// t in (tMin, tMax]. The upper bound narrows as closer hits are found.
func (s *Scene) NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Background returns the sky color for a ray direction: a vertical gradient
// from BottomColor at the nadir to TopColor at the zenith
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Y + 1.0)
	return s.BottomColor.Multiply(1.0 - t).Add(s.TopColor.Multiply(t))
}

// AmbientLight returns the constant ambient term
func (s *Scene) AmbientLight() core.Vec3 {
	return s.Ambient
}

// PointLights returns the scene's lights
func (s *Scene) PointLights() []lights.PointLight {
	return s.Lights
}
