package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Body is a composite mesh of triangles that share one material
type Body struct {
	surface
	triangles []*Triangle
}

// NewBody creates a body from triangle vertex triples. A nil material uses material.Default.
func NewBody(faces [][3]core.Vec3, mat *material.Material) *Body {
	s := newSurface(mat)
	triangles := make([]*Triangle, len(faces))
	for i, f := range faces {
		triangles[i] = NewTriangle(f[0], f[1], f[2], s.material)
	}
	return &Body{surface: s, triangles: triangles}
}

// NewBodyFromMesh creates a body from indexed vertices.
// Every three entries of faces form one triangle.
func NewBodyFromMesh(vertices []core.Vec3, faces []int, mat *material.Material) *Body {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}

	triples := make([][3]core.Vec3, len(faces)/3)
	for i := range triples {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if i0 < 0 || i1 < 0 || i2 < 0 || i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) {
			panic("Face index out of bounds")
		}
		triples[i] = [3]core.Vec3{vertices[i0], vertices[i1], vertices[i2]}
	}
	return NewBody(triples, mat)
}

// ClosestIntersection scans every triangle and keeps the nearest hit.
// Equal distances resolve to the earlier triangle.
func (b *Body) ClosestIntersection(h core.HandlingRay) (float64, core.HandlingRay) {
	best := core.NotIntersect
	resolved := h
	for _, tri := range b.triangles {
		t, candidate := tri.ClosestIntersection(h)
		if t != core.NotIntersect && (best == core.NotIntersect || t < best) {
			best = t
			resolved = candidate
		}
	}
	return best, resolved
}

// Lambert returns the diffuse response to a light ray resolved on this body
func (b *Body) Lambert(h core.HandlingRay, lightColor core.Color) core.Color {
	return b.material.Lambert(h, lightColor, material.White.Color)
}

// PrimitiveCount returns the number of triangles in this body
func (b *Body) PrimitiveCount() int {
	return len(b.triangles)
}

// Triangles returns the individual triangles
func (b *Body) Triangles() []*Triangle {
	return b.triangles
}
