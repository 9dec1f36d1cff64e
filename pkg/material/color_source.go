package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for surfaces
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// White is the neutral albedo of untextured surfaces
var White = NewSolidColor(core.NewColor(1, 1, 1))

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	return s.Color
}
