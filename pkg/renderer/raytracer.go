package renderer

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/dglen/go-whitted-raytracer/pkg/core"
	"github.com/dglen/go-whitted-raytracer/pkg/lights"
	"github.com/dglen/go-whitted-raytracer/pkg/material"
)

// Scene interface to avoid a circular import with the scene package
type Scene interface {
	// NearestHit returns the closest intersection with t in (tMin, tMax]
	NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// Background returns the sky color for a ray that hits nothing
	Background(ray core.Ray) core.Vec3
	// AmbientLight returns the constant ambient term
	AmbientLight() core.Vec3
	// PointLights returns the scene's lights
	PointLights() []lights.PointLight
}

// Raytracer renders a scene by recursive backward ray tracing. It only ever
// reads the scene, so one instance may serve concurrent pixel evaluations.
type Raytracer struct {
	scene  Scene
	camera *Camera
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, camera *Camera, width, height int, config Config, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: camera,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// RayColor returns the color transported along a ray. It recurses into
// reflection and refraction rays; depth counts the bounces taken so far.
func (rt *Raytracer) RayColor(ray core.Ray, depth int) core.Vec3 {
	// Terminal case: mutually reflective surfaces bottom out at the sky
	if depth >= rt.config.MaxDepth {
		return rt.scene.Background(ray)
	}

	hit, ok := rt.scene.NearestHit(ray, rt.config.Bias, math.Inf(1))
	if !ok {
		return rt.scene.Background(ray)
	}

	mat := hit.Material
	surfaceColor := mat.Texture.ColorAt(hit.Point, hit.U, hit.V)

	local := rt.localIllumination(ray, hit, surfaceColor)

	var reflected core.Vec3
	if mat.Reflective > 0 {
		direction := ray.Direction.Reflect(hit.Normal)
		origin := rt.offsetOrigin(hit.Point, hit.Normal, direction)
		reflected = rt.RayColor(core.NewRay(origin, direction), depth+1)
	}

	var refracted core.Vec3
	if mat.Transmissive > 0 {
		refracted = rt.refractedColor(ray, hit, depth)
	}

	// Energy redistribution: the local term only keeps whatever energy was
	// not handed to the recursive terms.
	localWeight := 1 - mat.Reflective - mat.Transmissive
	if localWeight < 0 {
		localWeight = 0
	}

	return mat.Emission.
		Add(local.Multiply(localWeight)).
		Add(reflected.Multiply(mat.Reflective)).
		Add(refracted.Multiply(mat.Transmissive))
}

// localIllumination computes the Phong term: ambient plus the shadowed
// diffuse and specular contributions of every light
func (rt *Raytracer) localIllumination(ray core.Ray, hit *material.HitRecord, surfaceColor core.Vec3) core.Vec3 {
	mat := hit.Material
	local := surfaceColor.MultiplyVec(rt.scene.AmbientLight())

	var diffuse, specular core.Vec3
	viewDir := ray.Direction.Negate()

	for _, light := range rt.scene.PointLights() {
		lightDir, distance := light.DirectionFrom(hit.Point)

		shadow := rt.shadowFactor(hit, lightDir, distance)
		if shadow == 0 {
			continue
		}

		lightColor := light.EffectiveColor(distance).Multiply(shadow)

		nDotL := hit.Normal.Dot(lightDir)
		if nDotL > 0 {
			diffuse = diffuse.Add(surfaceColor.MultiplyVec(lightColor).Multiply(nDotL))
		}

		reflectDir := lightDir.Negate().Reflect(hit.Normal)
		vDotR := viewDir.Dot(reflectDir)
		if vDotR > 0 {
			specular = specular.Add(lightColor.Multiply(math.Pow(vDotR, mat.SpecularExponent)))
		}
	}

	return local.
		Add(diffuse.Multiply(mat.Diffuse)).
		Add(specular.Multiply(mat.Specular))
}

// shadowFactor probes toward a light and returns the fraction of its
// contribution that survives: 1 when unobstructed, ShadowAttenuation when
// any primitive blocks the path before the light
func (rt *Raytracer) shadowFactor(hit *material.HitRecord, lightDir core.Vec3, lightDistance float64) float64 {
	origin := rt.offsetOrigin(hit.Point, hit.Normal, lightDir)
	probe := core.NewRay(origin, lightDir)

	if _, blocked := rt.scene.NearestHit(probe, rt.config.Bias, lightDistance-rt.config.Bias); blocked {
		return rt.config.ShadowAttenuation
	}
	return 1.0
}

// refractedColor traces the refraction ray derived from Snell's law. Under
// total internal reflection there is no refracted direction and the
// reflection ray substitutes for it.
func (rt *Raytracer) refractedColor(ray core.Ray, hit *material.HitRecord, depth int) core.Vec3 {
	mat := hit.Material

	// The hit normal already opposes the ray, so the refraction ratio is
	// decided by which side we hit.
	var ratio float64
	if hit.FrontFace {
		ratio = 1.0 / mat.RefractiveIndex
	} else {
		ratio = mat.RefractiveIndex
	}

	cosTheta := math.Min(-ray.Direction.Dot(hit.Normal), 1.0)
	k := 1 - ratio*ratio*(1-cosTheta*cosTheta)

	var direction core.Vec3
	if k < 0 {
		// Total internal reflection: a normal branch outcome, not an error
		direction = ray.Direction.Reflect(hit.Normal)
	} else {
		direction = ray.Direction.Multiply(ratio).
			Add(hit.Normal.Multiply(ratio*cosTheta - math.Sqrt(k)))
	}

	origin := rt.offsetOrigin(hit.Point, hit.Normal, direction)
	return rt.RayColor(core.NewRay(origin, direction), depth+1)
}

// offsetOrigin nudges a secondary ray's origin off the surface on whichever
// side the new direction leaves through, avoiding self-re-intersection from
// floating-point coincidence. Shared by shadow, reflection, and refraction
// rays.
func (rt *Raytracer) offsetOrigin(point, normal, direction core.Vec3) core.Vec3 {
	if direction.Dot(normal) >= 0 {
		return point.Add(normal.Multiply(rt.config.Bias))
	}
	return point.Subtract(normal.Multiply(rt.config.Bias))
}

// Render renders the full frame, splitting rows across a fixed-size worker
// pool. Rows are disjoint, so workers share the image without locking.
func (rt *Raytracer) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	workers := rt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if rt.logger != nil {
		rt.logger.Printf("Rendering %dx%d pixels with %d workers", rt.width, rt.height, workers)
	}

	rows := make(chan int, rt.height)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				rt.renderRow(img, j)
			}
		}()
	}

	for j := 0; j < rt.height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	return img
}

// renderRow renders one row of pixels into the shared image
func (rt *Raytracer) renderRow(img *image.RGBA, j int) {
	for i := 0; i < rt.width; i++ {
		s := float64(i) / float64(rt.width-1)
		t := float64(rt.height-1-j) / float64(rt.height-1)

		ray := rt.camera.GetRay(s, t)
		img.SetRGBA(i, j, vec3ToColor(rt.RayColor(ray, 0)))
	}
}

// vec3ToColor converts a linear color to a display pixel with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
