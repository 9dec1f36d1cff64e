package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Triangle represents a single planar triangle defined by three vertices
type Triangle struct {
	surface
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices. A nil material uses material.Default.
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *Triangle {
	return &Triangle{
		surface: newSurface(mat),
		V0:      v0,
		V1:      v1,
		V2:      v2,
		normal:  v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
	}
}

// ClosestIntersection tests the ray against the triangle
func (t *Triangle) ClosestIntersection(h core.HandlingRay) (float64, core.HandlingRay) {
	tParam, _, _, ok := intersectTriangle(h.Ray, t.V0, t.V1, t.V2)
	if !ok {
		return core.NotIntersect, h
	}
	return tParam, h.Resolve(tParam, t.normal)
}

// Lambert returns the diffuse response to a light ray resolved on this triangle
func (t *Triangle) Lambert(h core.HandlingRay, lightColor core.Color) core.Color {
	return t.material.Lambert(h, lightColor, material.White.Color)
}

// GetNormal returns the triangle's normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// intersectTriangle implements the Möller-Trumbore algorithm.
// It returns the ray parameter and the barycentric coordinates of the hit.
func intersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3) (float64, float64, float64, bool) {
	const parallelEpsilon = 1e-12

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -parallelEpsilon && a < parallelEpsilon {
		return core.NotIntersect, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.NotIntersect, 0, 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.NotIntersect, 0, 0, false
	}

	tParam := f * edge2.Dot(q)
	if tParam <= core.Epsilon {
		return core.NotIntersect, 0, 0, false
	}

	return tParam, u, v, true
}
