package material

import (
	"github.com/dglen/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface partitions incoming light energy.
// The four weights split energy between the local Phong term (Diffuse,
// Specular) and the recursive terms (Reflective, Transmissive). Correct
// energy redistribution assumes Reflective+Transmissive <= 1.
//
// Materials are constructed once at scene-build time and shared read-only
// by every primitive and every ray that hits them.
type Material struct {
	Texture          Texture   // Base color, solid or procedural
	SpecularExponent float64   // Phong lobe sharpness, >= 0
	Diffuse          float64   // Diffuse energy weight in [0,1]
	Specular         float64   // Specular energy weight in [0,1]
	Reflective       float64   // Mirror-reflection energy weight in [0,1]
	Transmissive     float64   // Refraction energy weight in [0,1]
	RefractiveIndex  float64   // 1.0 = vacuum/air baseline
	Emission         core.Vec3 // Self-luminous contribution, added unconditionally
}

// New creates a material with the given texture and sensible defaults:
// fully diffuse, no specular highlight, opaque, air-equivalent index.
func New(texture Texture) *Material {
	return &Material{
		Texture:          texture,
		SpecularExponent: 32,
		Diffuse:          1.0,
		RefractiveIndex:  1.0,
	}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, oriented against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	U, V      float64   // Surface parameterization for texture lookups
	Material  *Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// Shading code may always assume the stored normal opposes the ray.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
