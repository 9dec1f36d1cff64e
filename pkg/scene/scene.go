package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// It is read-only once rendering starts and may be shared between goroutines.
type Scene struct {
	Name         string
	Objects      []geometry.Surface // Iteration order breaks ties between equal distances
	Lights       []lights.Light
	CameraConfig CameraConfig
	TraceConfig  TraceConfig
}

// CameraConfig describes the pinhole camera used to generate primary rays
type CameraConfig struct {
	Eye    core.Vec3 // Camera position
	Center core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	VFov   float64   // Vertical field of view in degrees
	Width  int       // Image width
	Height int       // Image height
}

// TraceConfig bounds the bounce recursion performed by the render loop
type TraceConfig struct {
	MaxDepth       int     // Maximum number of bounces after the primary ray
	MinCoefficient float64 // Branches attenuated below this are dropped
}

// DefaultCameraConfig returns a camera at (0,0,5) looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:    core.NewVec3(0, 0, 5),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
		Width:  400,
		Height: 300,
	}
}

// DefaultTraceConfig returns sensible default values
func DefaultTraceConfig() TraceConfig {
	return TraceConfig{
		MaxDepth:       5,
		MinCoefficient: 0.01,
	}
}

// New creates a scene that owns the given objects and lights
func New(objects []geometry.Surface, sceneLights []lights.Light) *Scene {
	return &Scene{
		Objects:      objects,
		Lights:       sceneLights,
		CameraConfig: DefaultCameraConfig(),
		TraceConfig:  DefaultTraceConfig(),
	}
}

// AddObject appends a surface to the scene
func (s *Scene) AddObject(obj geometry.Surface) {
	s.Objects = append(s.Objects, obj)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// nearest is the best hit found so far during a scan
type nearest struct {
	t        float64
	surface  geometry.Surface
	resolved core.HandlingRay
}

// consider returns the better of n and obj's own closest hit on h.
// Only a strictly smaller parameter replaces an existing hit.
func (n nearest) consider(obj geometry.Surface, h core.HandlingRay) nearest {
	t, candidate := obj.ClosestIntersection(h)
	if t == core.NotIntersect {
		return n
	}
	if n.surface != nil && t >= n.t {
		return n
	}
	return nearest{t: t, surface: obj, resolved: candidate}
}

// ClosestIntersection finds the nearest surface along h.Ray by scanning every object.
// It returns the surface and h resolved at the hit, or nil and h unchanged on a miss.
func (s *Scene) ClosestIntersection(h core.HandlingRay) (geometry.Surface, core.HandlingRay) {
	best := nearest{t: core.NotIntersect, resolved: h}
	for _, obj := range s.Objects {
		best = best.consider(obj, h)
	}
	return best.surface, best.resolved
}

// Hit reports whether the view ray hits any surface
func (s *Scene) Hit(view core.RayWithCoef) bool {
	obj, _ := s.ClosestIntersection(core.NewHandlingRay(view.Ray))
	return obj != nil
}

// Phong shades one bounce of view. It returns the direct lighting at the nearest hit,
// scaled by view.Coefficient, and the reflected and refracted branches for the caller
// to trace. On a miss the color is black and both branches have coefficient 0.
func (s *Scene) Phong(view core.RayWithCoef) (core.Color, core.RayWithCoef, core.RayWithCoef) {
	var color core.Color
	var reflectBranch, refractBranch core.RayWithCoef

	obj, viewHit := s.ClosestIntersection(core.NewHandlingRay(view.Ray))
	if obj == nil {
		return color, reflectBranch, refractBranch
	}

	mat := obj.Material()
	reflectBranch = core.NewRayWithCoef(obj.Reflect(viewHit), view.Coefficient*mat.ReflectionFact)
	refractBranch = core.NewRayWithCoef(obj.Refract(viewHit), view.Coefficient*mat.RefractionFact)

	hitPoint := viewHit.HitPoint()
	toViewer := view.Ray.Direction.Normalize().Negate()

	for _, light := range s.Lights {
		lit, lightHit := s.ClosestIntersection(core.NewHandlingRay(light.RayTo(hitPoint)))
		if lit == nil || !core.IsAlmostSame(lightHit.HitPoint(), hitPoint) {
			continue
		}

		color = color.Add(lit.Lambert(lightHit, light.Color))

		phongTerm := lit.Reflect(lightHit).Direction.Dot(toViewer)
		if phongTerm <= 0 {
			continue
		}
		litMat := lit.Material()
		specular := light.Color.Multiply(math.Pow(phongTerm, litMat.SpecularPower)).MultiplyVec(litMat.SpecularFact)
		color = color.Add(specular)
	}

	return color.Multiply(view.Coefficient), reflectBranch, refractBranch
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, obj := range s.Objects {
		if composite, ok := obj.(geometry.Primitive); ok {
			count += composite.PrimitiveCount()
		} else {
			count++
		}
	}
	return count
}
