package renderer

import (
	"math"
	"testing"

	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/geometry"
	"github.com/dglen/go-whitted-raytracer/pkg/lights"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
)

// stubScene is a minimal Scene implementation for exercising the tracer
// without importing the scene package.
type stubScene struct {
	shapes     []geometry.Shape
	lights     []lights.PointLight
	ambient    core.Vec3
	background core.Vec3
}

func (s *stubScene) NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax
	for _, shape := range s.shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}
	return closest, closest != nil
}

func (s *stubScene) Background(ray core.Ray) core.Vec3 { return s.background }

func (s *stubScene) AmbientLight() core.Vec3 { return s.ambient }

func (s *stubScene) PointLights() []lights.PointLight { return s.lights }

func testTracer(scene Scene, config Config) *Raytracer {
	camera := NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}, 1.0)
	return NewRaytracer(scene, camera, 4, 4, config, nil)
}

func assertColorsEqual(t *testing.T, expected, got core.Vec3, context string) {
	t.Helper()
	const tolerance = 1e-9
	if got.Subtract(expected).Length() > tolerance {
		t.Errorf("%s: Expected %v, got %v", context, expected, got)
	}
}

func TestRayColor_MissReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.2, 0.4, 0.8)
	scene := &stubScene{
		lights:     []lights.PointLight{lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), 1)},
		ambient:    core.NewVec3(0.1, 0.1, 0.1),
		background: background,
	}
	rt := testTracer(scene, DefaultConfig())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	assertColorsEqual(t, background, rt.RayColor(ray, 0), "Miss")
}

func TestRayColor_DepthGuardReturnsBackground(t *testing.T) {
	// Two perfect mirrors facing each other: the bounce chain must bottom
	// out at the background for any depth cap.
	mirror := material.New(material.NewSolidColor(core.NewVec3(1, 1, 1)))
	mirror.Reflective = 1.0

	background := core.NewVec3(0.3, 0.5, 0.7)
	scene := &stubScene{
		shapes: []geometry.Shape{
			geometry.NewPlane(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0), mirror),
			geometry.NewPlane(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0), mirror),
		},
		background: background,
	}

	for _, maxDepth := range []int{1, 3, 5} {
		config := DefaultConfig()
		config.MaxDepth = maxDepth
		rt := testTracer(scene, config)

		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
		got := rt.RayColor(ray, 0)

		assertColorsEqual(t, background, got, "Depth cap")
	}
}

func TestRayColor_UnlitSurfaceIsEmissionOnly(t *testing.T) {
	// Without lights or ambient light, an opaque diffuse surface
	// contributes nothing but its own emission.
	emission := core.NewVec3(0.25, 0.5, 0.75)
	mat := material.New(material.NewSolidColor(core.NewVec3(1, 1, 1)))
	mat.Emission = emission

	scene := &stubScene{
		shapes: []geometry.Shape{
			geometry.NewBox(core.NewVec3(0, 0, -5), core.NewVec3(1, 1, 1), mat),
		},
	}
	rt := testTracer(scene, DefaultConfig())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	assertColorsEqual(t, emission, rt.RayColor(ray, 0), "Unlit emissive surface")
}

func TestRayColor_EnergyRedistribution(t *testing.T) {
	// A plane whose reflection and refraction rays both escape to a
	// constant background. With an index of 1.0 the refraction ray passes
	// straight through, so every term is known in closed form:
	//
	//   emission + local*(1-r-t) + background*r + background*t
	surface := core.NewVec3(1.0, 0.8, 0.6)
	ambient := core.NewVec3(0.2, 0.2, 0.2)
	background := core.NewVec3(0.1, 0.3, 0.5)
	emission := core.NewVec3(0.05, 0, 0)

	tests := []struct {
		name         string
		reflective   float64
		transmissive float64
	}{
		{"Opaque", 0, 0},
		{"Half mirror", 0.5, 0},
		{"Half glass", 0, 0.5},
		{"Mixed split", 0.3, 0.4},
		{"Fully recursive", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mat := material.New(material.NewSolidColor(surface))
			mat.Reflective = tt.reflective
			mat.Transmissive = tt.transmissive
			mat.Emission = emission

			scene := &stubScene{
				shapes: []geometry.Shape{
					geometry.NewPlane(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), mat),
				},
				ambient:    ambient,
				background: background,
			}
			rt := testTracer(scene, DefaultConfig())

			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
			got := rt.RayColor(ray, 0)

			localWeight := 1 - tt.reflective - tt.transmissive
			expected := emission.
				Add(surface.MultiplyVec(ambient).Multiply(localWeight)).
				Add(background.Multiply(tt.reflective + tt.transmissive))

			assertColorsEqual(t, expected, got, "Energy split")
		})
	}
}

func TestRayColor_TotalInternalReflection(t *testing.T) {
	// Hitting a glass surface from inside the dense medium beyond the
	// critical angle must reflect back instead of refracting through.
	// A marker box is placed along the internal reflection path; hitting
	// it proves the ray bounced back rather than passing upward.
	glass := material.New(material.NewSolidColor(core.NewVec3(1, 1, 1)))
	glass.Diffuse = 0
	glass.Transmissive = 1.0
	glass.RefractiveIndex = 1.5

	marker := material.New(material.NewSolidColor(core.NewVec3(1, 1, 1)))
	marker.Emission = core.NewVec3(0, 1, 0)

	// Incidence at 60 degrees, well beyond the ~41.8 degree critical
	// angle for an index of 1.5.
	origin := core.NewVec3(0, 0, -1)
	direction := core.NewVec3(math.Sqrt(3)/2, 0, 0.5)

	// The ray meets the plane at (sqrt(3), 0, 0); the reflected direction
	// flips the z component, so the marker sits two units further along it.
	markerCenter := core.NewVec3(2*math.Sqrt(3), 0, -1)

	scene := &stubScene{
		shapes: []geometry.Shape{
			geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), glass),
			geometry.NewBox(markerCenter, core.NewVec3(0.5, 0.5, 0.5), marker),
		},
	}
	rt := testTracer(scene, DefaultConfig())

	got := rt.RayColor(core.NewRay(origin, direction), 0)
	assertColorsEqual(t, marker.Emission, got, "Total internal reflection")
}

func TestRayColor_RefractionBendsTowardNormal(t *testing.T) {
	// Entering a denser medium at 45 degrees bends the ray toward the
	// normal: sin(theta_t) = sin(45)/1.5. A marker box sits on the bent
	// path but off the straight-through path, so hitting it proves the
	// ray actually bent.
	glass := material.New(material.NewSolidColor(core.NewVec3(1, 1, 1)))
	glass.Diffuse = 0
	glass.Transmissive = 1.0
	glass.RefractiveIndex = 1.5

	marker := material.New(material.NewSolidColor(core.NewVec3(1, 1, 1)))
	marker.Emission = core.NewVec3(1, 0, 0)

	inv := 1 / math.Sqrt2
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(inv, 0, -inv))

	// The ray meets the plane at (1, 0, 0) and continues below it along
	// the refracted direction (sinT, 0, -cosT).
	sinT := inv / 1.5
	cosT := math.Sqrt(1 - sinT*sinT)
	markerCenter := core.NewVec3(1+3*sinT, 0, -3*cosT)

	scene := &stubScene{
		shapes: []geometry.Shape{
			geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), glass),
			geometry.NewBox(markerCenter, core.NewVec3(0.3, 0.3, 0.3), marker),
		},
	}
	rt := testTracer(scene, DefaultConfig())

	got := rt.RayColor(ray, 0)
	assertColorsEqual(t, marker.Emission, got, "Refracted path")
}

func TestRayColor_ShadowAttenuation(t *testing.T) {
	floorMat := material.New(material.NewSolidColor(core.NewVec3(1, 1, 1)))
	blocker := material.New(material.NewSolidColor(core.NewVec3(0, 0, 0)))

	ambient := core.NewVec3(0.1, 0.1, 0.1)
	light := lights.NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1), 1)

	buildScene := func(occluded bool) *stubScene {
		s := &stubScene{
			shapes: []geometry.Shape{
				geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floorMat),
			},
			lights:  []lights.PointLight{light},
			ambient: ambient,
		}
		if occluded {
			s.shapes = append(s.shapes,
				geometry.NewBox(core.NewVec3(0, 5, 0), core.NewVec3(0.5, 0.5, 0.5), blocker))
		}
		return s
	}

	// A ray striking the floor at the origin, directly below the light.
	ray := core.NewRay(core.NewVec3(0, 2, 1), core.NewVec3(0, -2, -1))

	config := DefaultConfig()
	config.ShadowAttenuation = 0.3

	lit := testTracer(buildScene(false), config).RayColor(ray, 0)
	shadowed := testTracer(buildScene(true), config).RayColor(ray, 0)

	ambientTerm := core.NewVec3(1, 1, 1).MultiplyVec(ambient)
	expected := ambientTerm.Add(lit.Subtract(ambientTerm).Multiply(0.3))
	assertColorsEqual(t, expected, shadowed, "Soft shadow")

	// Hard shadows kill the direct contribution entirely.
	config.ShadowAttenuation = 0
	hard := testTracer(buildScene(true), config).RayColor(ray, 0)
	assertColorsEqual(t, ambientTerm, hard, "Hard shadow")
}

func TestRender_DimensionsAndDeterminism(t *testing.T) {
	mat := material.New(material.NewSolidColor(core.NewVec3(0.8, 0.2, 0.2)))
	scene := &stubScene{
		shapes: []geometry.Shape{
			geometry.NewBox(core.NewVec3(0, 0, -5), core.NewVec3(1, 1, 1), mat),
		},
		lights:     []lights.PointLight{lights.NewPointLight(core.NewVec3(2, 5, 0), core.NewVec3(1, 1, 1), 1)},
		ambient:    core.NewVec3(0.1, 0.1, 0.1),
		background: core.NewVec3(0.2, 0.2, 0.4),
	}

	camera := NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     45,
	}, 8.0/6.0)

	config := DefaultConfig()
	config.Workers = 4

	first := NewRaytracer(scene, camera, 8, 6, config, nil).Render()
	second := NewRaytracer(scene, camera, 8, 6, config, nil).Render()

	bounds := first.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("Expected deterministic output, pixels differ at byte %d", i)
		}
	}
}

func TestVec3ToColor_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected [4]uint8
	}{
		{"In range", core.NewVec3(0.5, 0.25, 1.0), [4]uint8{127, 63, 255, 255}},
		{"Above one", core.NewVec3(2.0, 1.5, 1.1), [4]uint8{255, 255, 255, 255}},
		{"Below zero", core.NewVec3(-1.0, -0.1, 0), [4]uint8{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vec3ToColor(tt.input)
			if got.R != tt.expected[0] || got.G != tt.expected[1] ||
				got.B != tt.expected[2] || got.A != tt.expected[3] {
				t.Errorf("Expected %v, got RGBA(%d,%d,%d,%d)",
					tt.expected, got.R, got.G, got.B, got.A)
			}
		})
	}
}
