// Package lights provides the light sources consumed by the shading engine.
package lights

import (
	"github.com/dglen/go-whitted-raytracer/pkg/core"
)

// PointLight is a point light with an inverse-square-like distance falloff:
// attenuation = 1 / (1 + Linear*d + Quadratic*d^2).
// Lights are immutable once constructed.
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
	Linear    float64 // Linear falloff coefficient
	Quadratic float64 // Quadratic falloff coefficient
}

// NewPointLight creates a point light with the default falloff coefficients
func NewPointLight(position, color core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Linear:    0.1,
		Quadratic: 0.01,
	}
}

// DirectionFrom returns the unit direction from the point toward the light
// and the distance between them
func (l PointLight) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	return toLight.Normalize(), distance
}

// EffectiveColor returns the light color scaled by intensity and by the
// distance falloff
func (l PointLight) EffectiveColor(distance float64) core.Vec3 {
	attenuation := 1.0 / (1.0 + l.Linear*distance + l.Quadratic*distance*distance)
	return l.Color.Multiply(l.Intensity * attenuation)
}
