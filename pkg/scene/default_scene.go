package scene

import (
	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/geometry"
	"github.com/dglen/go-whitted-raytracer/pkg/lights"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
	"github.com/dglen/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: a checkered cube and a smaller
// mirrored cube above a gray floor, lit by a single warm light
func NewDefaultScene() *Scene {
	s := New()

	s.TopColor = core.NewVec3(0.5, 0.7, 1.0)
	s.BottomColor = core.NewVec3(1.0, 1.0, 1.0)

	floor := material.New(material.NewSolidColor(core.NewVec3(0.7, 0.7, 0.7)))
	floor.Diffuse = 0.9
	floor.Specular = 0.1

	checker := material.New(material.NewCheckerboard(
		1.0,
		core.NewVec3(1.0, 0.0, 1.0),
		core.NewVec3(0.0, 0.0, 0.0),
	))
	checker.Diffuse = 0.5
	checker.Specular = 0.3
	checker.SpecularExponent = 90
	checker.Reflective = 0.2

	mirror := material.New(material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)))
	mirror.Diffuse = 0.1
	mirror.Specular = 0.2
	mirror.SpecularExponent = 200
	mirror.Reflective = 0.7

	s.Add(
		geometry.NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewBox(core.NewVec3(0, -0.5, -3), core.NewVec3(0.75, 0.75, 0.75), checker),
		geometry.NewBox(core.NewVec3(1.8, -1, -4), core.NewVec3(0.5, 0.5, 0.5), mirror),
	)

	s.AddLight(lights.NewPointLight(
		core.NewVec3(-3, 5, 2),
		core.NewVec3(1.0, 1.0, 0.9),
		1.0,
	))

	s.Camera = renderer.CameraConfig{
		Position: core.NewVec3(3, 4, 2),
		LookAt:   core.NewVec3(0, -0.5, -3),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}

	return s
}
