package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere is a point-based analytic shape: every surface point is Radius away from Center
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere. A nil material uses material.Default.
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		surface: newSurface(mat),
		Center:  center,
		Radius:  radius,
	}
}

// ClosestIntersection solves the ray/sphere quadratic for the nearest root past core.Epsilon
func (s *Sphere) ClosestIntersection(h core.HandlingRay) (float64, core.HandlingRay) {
	ray := h.Ray
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return core.NotIntersect, h
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.NotIntersect, h
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= core.Epsilon {
		root = (-halfB + sqrtD) / a
		if root <= core.Epsilon {
			return core.NotIntersect, h
		}
	}

	outwardNormal := ray.At(root).Subtract(s.Center).Multiply(1.0 / s.Radius)
	return root, h.Resolve(root, outwardNormal)
}

// Lambert returns the diffuse response to a light ray resolved on this sphere
func (s *Sphere) Lambert(h core.HandlingRay, lightColor core.Color) core.Color {
	return s.material.Lambert(h, lightColor, material.White.Color)
}
