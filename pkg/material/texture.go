package material

import (
	"math"

	"github.com/dglen/go-whitted-raytracer/pkg/core"
)

// Texture produces a surface color for a point on a surface.
// Implementations receive both the world-space point and the (u,v) surface
// parameterization so that procedural patterns can key off either.
type Texture interface {
	ColorAt(point core.Vec3, u, v float64) core.Vec3
}

// SolidColor is a texture with a single constant color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color texture
func NewSolidColor(color core.Vec3) SolidColor {
	return SolidColor{Color: color}
}

// ColorAt returns the constant color regardless of position
func (s SolidColor) ColorAt(point core.Vec3, u, v float64) core.Vec3 {
	return s.Color
}

// Checkerboard is a 3D procedural checker pattern keyed by the parity of the
// scaled, floored world coordinate
type Checkerboard struct {
	Scale  float64 // Cells per world unit
	Color1 core.Vec3
	Color2 core.Vec3
}

// NewCheckerboard creates a 3D checkerboard texture
func NewCheckerboard(scale float64, color1, color2 core.Vec3) Checkerboard {
	return Checkerboard{Scale: scale, Color1: color1, Color2: color2}
}

// ColorAt alternates between the two colors per checker cell along each axis
func (c Checkerboard) ColorAt(point core.Vec3, u, v float64) core.Vec3 {
	xCheck := int(math.Floor(point.X * c.Scale))
	yCheck := int(math.Floor(point.Y * c.Scale))
	zCheck := int(math.Floor(point.Z * c.Scale))

	if (xCheck+yCheck+zCheck)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}
