package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Surface is anything the scene can intersect and shade
type Surface interface {
	// ClosestIntersection returns the smallest ray parameter greater than core.Epsilon
	// at which h.Ray meets the surface, together with h resolved at that hit.
	// A miss returns core.NotIntersect and h unchanged.
	ClosestIntersection(h core.HandlingRay) (float64, core.HandlingRay)

	// Reflect returns the mirror ray leaving the resolved hit
	Reflect(h core.HandlingRay) core.Ray

	// Refract returns the transmitted ray leaving the resolved hit
	Refract(h core.HandlingRay) core.Ray

	// Lambert returns the diffuse response to a light ray resolved on this surface
	Lambert(h core.HandlingRay, lightColor core.Color) core.Color

	// Material returns the surface's shading parameters
	Material() *material.Material
}

// Primitive counts surfaces that are made of several primitives
type Primitive interface {
	PrimitiveCount() int
}

// surface carries the material shared by all variants and the optics that only depend on it
type surface struct {
	material *material.Material
}

func newSurface(mat *material.Material) surface {
	if mat == nil {
		mat = material.Default()
	}
	return surface{material: mat}
}

// Material returns the surface's shading parameters
func (s surface) Material() *material.Material {
	return s.material
}

// Reflect returns the mirror ray leaving the resolved hit
func (s surface) Reflect(h core.HandlingRay) core.Ray {
	return s.material.Reflect(h)
}

// Refract returns the transmitted ray leaving the resolved hit
func (s surface) Refract(h core.HandlingRay) core.Ray {
	return s.material.Refract(h)
}
