package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ImageSurface is a parallelogram with an image stretched across it.
// Corner maps to texture UV (0,0), Corner+U to (1,0) and Corner+V to (0,1).
type ImageSurface struct {
	surface
	Corner  core.Vec3
	U       core.Vec3
	V       core.Vec3
	Normal  core.Vec3
	Texture material.ColorSource
	w       core.Vec3 // Cached n / (n · (u × v)) for planar coordinates
}

// NewImageSurface creates the parallelogram spanned by b-a and c-a
func NewImageSurface(a, b, c core.Vec3, texture material.ColorSource, mat *material.Material) *ImageSurface {
	u := b.Subtract(a)
	v := c.Subtract(a)
	cross := u.Cross(v)
	normal := cross.Normalize()

	if texture == nil {
		texture = material.White
	}

	var w core.Vec3
	if d := normal.Dot(cross); d != 0 {
		w = normal.Multiply(1.0 / d)
	}

	return &ImageSurface{
		surface: newSurface(mat),
		Corner:  a,
		U:       u,
		V:       v,
		Normal:  normal,
		Texture: texture,
		w:       w,
	}
}

// ClosestIntersection tests the ray against the parallelogram
func (s *ImageSurface) ClosestIntersection(h core.HandlingRay) (float64, core.HandlingRay) {
	t, ok := intersectPlane(h.Ray, s.Corner, s.Normal)
	if !ok {
		return core.NotIntersect, h
	}

	uv := s.planarCoordinates(h.Ray.At(t))
	if uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
		return core.NotIntersect, h
	}

	return t, h.Resolve(t, s.Normal)
}

// Lambert returns the diffuse response tinted by the texel under the hit point
func (s *ImageSurface) Lambert(h core.HandlingRay, lightColor core.Color) core.Color {
	point := h.HitPoint()
	albedo := s.Texture.Evaluate(s.planarCoordinates(point), point)
	return s.material.Lambert(h, lightColor, albedo)
}

// planarCoordinates returns the (u, v) coordinates of a point on the plane
func (s *ImageSurface) planarCoordinates(point core.Vec3) core.Vec2 {
	p := point.Subtract(s.Corner)
	return core.NewVec2(
		s.w.Dot(p.Cross(s.V)),
		s.w.Dot(s.U.Cross(p)),
	)
}
