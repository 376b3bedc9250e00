package scene

import (
	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/geometry"
	"github.com/dglen/go-whitted-raytracer/pkg/lights"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
	"github.com/dglen/go-whitted-raytracer/pkg/renderer"
)

// NewGlassScene creates a scene showcasing refraction: a glass cube over a
// checkered floor with a solid cube behind it, lit by two lights
func NewGlassScene() *Scene {
	s := New()

	s.TopColor = core.NewVec3(0.3, 0.5, 0.9)
	s.BottomColor = core.NewVec3(0.9, 0.9, 1.0)

	floor := material.New(material.NewCheckerboard(
		0.5,
		core.NewVec3(0.85, 0.85, 0.85),
		core.NewVec3(0.2, 0.2, 0.2),
	))
	floor.Diffuse = 0.8
	floor.Specular = 0.1

	glass := material.New(material.NewSolidColor(core.NewVec3(1.0, 1.0, 1.0)))
	glass.Diffuse = 0.05
	glass.Specular = 0.3
	glass.SpecularExponent = 250
	glass.Reflective = 0.1
	glass.Transmissive = 0.85
	glass.RefractiveIndex = 1.5

	red := material.New(material.NewSolidColor(core.NewVec3(0.9, 0.2, 0.2)))
	red.Diffuse = 0.9
	red.Specular = 0.2
	red.SpecularExponent = 60

	s.Add(
		geometry.NewPlane(core.NewVec3(0, -1.5, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewBox(core.NewVec3(0, -0.5, -3), core.NewVec3(1, 1, 1), glass),
		geometry.NewBox(core.NewVec3(-0.5, -1, -6), core.NewVec3(0.6, 0.6, 0.6), red),
	)

	s.AddLight(lights.NewPointLight(
		core.NewVec3(-4, 6, 1),
		core.NewVec3(1.0, 1.0, 0.95),
		1.0,
	))
	s.AddLight(lights.NewPointLight(
		core.NewVec3(4, 3, -1),
		core.NewVec3(0.8, 0.8, 1.0),
		0.6,
	))

	s.Camera = renderer.CameraConfig{
		Position: core.NewVec3(0, 1, 2),
		LookAt:   core.NewVec3(0, -0.5, -3),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     50,
	}

	return s
}
