package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// GridSurface is an infinite plane through three points painted with a two-color grid
type GridSurface struct {
	surface
	Point   core.Vec3 // A point on the plane
	Normal  core.Vec3 // Unit normal from (b-a) × (c-a)
	Pattern *material.GridPattern
}

// NewGridSurface creates the plane through a, b and c. Grid cells are gridWidth wide
// and aligned with b-a.
func NewGridSurface(a, b, c core.Vec3, color1, color2 core.Color, gridWidth float64, mat *material.Material) *GridSurface {
	u := b.Subtract(a)
	v := c.Subtract(a)
	return &GridSurface{
		surface: newSurface(mat),
		Point:   a,
		Normal:  u.Cross(v).Normalize(),
		Pattern: material.NewGridPattern(a, u, v, gridWidth, color1, color2),
	}
}

// ClosestIntersection tests the ray against the plane
func (g *GridSurface) ClosestIntersection(h core.HandlingRay) (float64, core.HandlingRay) {
	t, ok := intersectPlane(h.Ray, g.Point, g.Normal)
	if !ok {
		return core.NotIntersect, h
	}
	return t, h.Resolve(t, g.Normal)
}

// Lambert returns the diffuse response tinted by the grid cell under the hit point
func (g *GridSurface) Lambert(h core.HandlingRay, lightColor core.Color) core.Color {
	albedo := g.Pattern.Evaluate(core.Vec2{}, h.HitPoint())
	return g.material.Lambert(h, lightColor, albedo)
}

// intersectPlane returns the ray parameter where the ray crosses the plane
func intersectPlane(ray core.Ray, point, normal core.Vec3) (float64, bool) {
	denominator := ray.Direction.Dot(normal)

	// Ray parallel to plane
	if math.Abs(denominator) < 1e-12 {
		return core.NotIntersect, false
	}

	t := point.Subtract(ray.Origin).Dot(normal) / denominator
	if t <= core.Epsilon {
		return core.NotIntersect, false
	}
	return t, true
}
