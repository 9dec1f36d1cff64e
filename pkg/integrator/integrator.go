package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a primary ray.
	// Returns the color and the number of shading evaluations it took.
	RayColor(ray core.Ray, s *scene.Scene) (core.Color, int)
}
