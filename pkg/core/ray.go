package core

import "math"

const (
	// NotIntersect is the only value surfaces return when a ray misses them.
	NotIntersect = -1.0

	// Epsilon is the smallest ray parameter accepted as a real hit. Secondary
	// rays start on the surface they leave, so anything closer is self-intersection.
	Epsilon = 1e-6

	// AlmostSameTolerance is the per-component distance under which two points
	// are treated as the same point by IsAlmostSame. Shadow rays are traced from
	// the light back to the shaded point, so the two hit points only agree up to
	// floating point error.
	AlmostSameTolerance = 1e-5
)

// Ray represents a ray with an origin and direction.
// Direction is not required to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// HandlingRay is a query ray together with the state resolved by the surface it hit.
//
// Law.Origin is the hit point and Law.Direction the unit surface normal at the hit,
// turned to face against Ray. FrontFace reports whether Ray struck the outward side
// of the surface. Before a successful intersection Law equals Ray.
type HandlingRay struct {
	Ray       Ray
	Law       Ray
	FrontFace bool
}

// NewHandlingRay wraps a ray for an intersection query
func NewHandlingRay(ray Ray) HandlingRay {
	return HandlingRay{Ray: ray, Law: ray}
}

// HitPoint returns the resolved hit point
func (h HandlingRay) HitPoint() Vec3 {
	return h.Law.Origin
}

// Normal returns the resolved surface normal
func (h HandlingRay) Normal() Vec3 {
	return h.Law.Direction
}

// Resolve returns a copy of h with the hit at parameter t and the given
// outward normal, flipping the normal when the ray hit the back side.
func (h HandlingRay) Resolve(t float64, outwardNormal Vec3) HandlingRay {
	frontFace := h.Ray.Direction.Dot(outwardNormal) < 0
	normal := outwardNormal
	if !frontFace {
		normal = outwardNormal.Negate()
	}
	h.Law = Ray{Origin: h.Ray.At(t), Direction: normal}
	h.FrontFace = frontFace
	return h
}

// RayWithCoef pairs a ray branch with its accumulated attenuation
type RayWithCoef struct {
	Ray         Ray
	Coefficient float64
}

// NewRayWithCoef creates a new ray branch
func NewRayWithCoef(ray Ray, coefficient float64) RayWithCoef {
	return RayWithCoef{Ray: ray, Coefficient: coefficient}
}

// IsAlmostSame reports whether a and b agree within AlmostSameTolerance on every axis
func IsAlmostSame(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < AlmostSameTolerance &&
		math.Abs(a.Y-b.Y) < AlmostSameTolerance &&
		math.Abs(a.Z-b.Z) < AlmostSameTolerance
}
