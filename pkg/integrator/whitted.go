package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// WhittedIntegrator follows mirror and transmission branches from every hit,
// adding the direct Phong lighting found along each one
type WhittedIntegrator struct {
	config scene.TraceConfig
}

// NewWhittedIntegrator creates a new Whitted-style integrator
func NewWhittedIntegrator(config scene.TraceConfig) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// branch is a pending ray and the number of bounces that produced it
type branch struct {
	view  core.RayWithCoef
	depth int
}

// RayColor traces ray and all of its reflected and refracted descendants.
// Branches are kept on an explicit stack, so deep scenes never grow the goroutine stack.
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) (core.Color, int) {
	var color core.Color
	evaluations := 0

	pending := []branch{{view: core.NewRayWithCoef(ray, 1.0)}}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		direct, reflected, refracted := s.Phong(current.view)
		evaluations++
		color = color.Add(direct)

		if current.depth >= w.config.MaxDepth {
			continue
		}
		for _, next := range [2]core.RayWithCoef{reflected, refracted} {
			if w.worthTracing(next) {
				pending = append(pending, branch{view: next, depth: current.depth + 1})
			}
		}
	}

	return color, evaluations
}

// worthTracing reports whether a branch still carries enough energy to matter
func (w *WhittedIntegrator) worthTracing(b core.RayWithCoef) bool {
	return b.Coefficient > 0 && b.Coefficient >= w.config.MinCoefficient
}
