package material

import (
	"github.com/dglen/go-whitted-raytracer/pkg/core"
)

// ImageTexture samples colors from a pre-decoded pixel array using the
// surface (u,v) parameterization with fractional-wrap addressing
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// ColorAt samples the texture at (u,v) using nearest-neighbor filtering
func (t *ImageTexture) ColorAt(point core.Vec3, u, v float64) core.Vec3 {
	// Wrap UV coordinates to [0, 1)
	u = u - float64(int(u))
	v = v - float64(int(v))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	// V=0 is bottom, V=1 is top; image rows run top to bottom
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
