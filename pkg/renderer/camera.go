package renderer

import (
	"math"

	"github.com/dglen/go-whitted-raytracer/pkg/core"
)

// CameraConfig holds the camera parameters supplied by scenes
type CameraConfig struct {
	Position core.Vec3 // Eye position
	LookAt   core.Vec3 // Point the camera looks at
	Up       core.Vec3 // Up direction hint
	VFov     float64   // Vertical field of view in degrees
}

// Camera generates primary rays from an orthonormal basis
type Camera struct {
	position core.Vec3
	forward  core.Vec3
	right    core.Vec3
	up       core.Vec3

	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera from a config and the output aspect ratio
// (width / height)
func NewCamera(config CameraConfig, aspectRatio float64) *Camera {
	forward := config.LookAt.Subtract(config.Position).Normalize()
	right := forward.Cross(config.Up).Normalize()
	up := right.Cross(forward)

	halfHeight := math.Tan(config.VFov * math.Pi / 180 / 2)
	halfWidth := halfHeight * aspectRatio

	return &Camera{
		position:   config.Position,
		forward:    forward,
		right:      right,
		up:         up,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// Position returns the camera's eye position
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// GetRay generates a primary ray for screen coordinates (s, t) where
// 0 <= s,t <= 1, with (0,0) the bottom-left of the image plane
func (c *Camera) GetRay(s, t float64) core.Ray {
	ndcX := s*2 - 1
	ndcY := t*2 - 1

	direction := c.forward.
		Add(c.right.Multiply(ndcX * c.halfWidth)).
		Add(c.up.Multiply(ndcY * c.halfHeight))

	return core.NewRay(c.position, direction)
}
