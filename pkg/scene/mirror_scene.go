package scene

import (
	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/geometry"
	"github.com/dglen/go-whitted-raytracer/pkg/lights"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
	"github.com/dglen/go-whitted-raytracer/pkg/renderer"
)

// NewMirrorScene creates two facing mirror walls with a checkered cube
// between them. Rays bounce between the walls until the depth cap, which
// makes this scene a good stress test for recursion termination.
func NewMirrorScene() *Scene {
	s := New()

	s.TopColor = core.NewVec3(0.6, 0.7, 0.9)
	s.BottomColor = core.NewVec3(0.9, 0.85, 0.8)

	mirror := material.New(material.NewSolidColor(core.NewVec3(0.95, 0.95, 0.95)))
	mirror.Diffuse = 0.05
	mirror.Reflective = 0.9

	floor := material.New(material.NewSolidColor(core.NewVec3(0.6, 0.6, 0.65)))
	floor.Diffuse = 0.9

	checker := material.New(material.NewCheckerboard(
		2.0,
		core.NewVec3(0.9, 0.6, 0.1),
		core.NewVec3(0.1, 0.1, 0.1),
	))
	checker.Diffuse = 0.7
	checker.Specular = 0.2

	s.Add(
		geometry.NewPlane(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0), mirror),
		geometry.NewPlane(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0), mirror),
		geometry.NewPlane(core.NewVec3(0, -1.5, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewBox(core.NewVec3(0, -0.75, -4), core.NewVec3(0.75, 0.75, 0.75), checker),
	)

	s.AddLight(lights.NewPointLight(
		core.NewVec3(0, 5, 0),
		core.NewVec3(1.0, 1.0, 1.0),
		1.0,
	))

	s.Camera = renderer.CameraConfig{
		Position: core.NewVec3(0, 0.5, 1),
		LookAt:   core.NewVec3(0, -0.75, -4),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     55,
	}

	return s
}
