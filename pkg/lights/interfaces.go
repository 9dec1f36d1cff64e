package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// Light is a point emitter
type Light struct {
	Pos   core.Vec3  // Position of the emitter
	Color core.Color // Emitted color and intensity
}

// NewLight creates a new point light
func NewLight(pos core.Vec3, color core.Color) Light {
	return Light{Pos: pos, Color: color}
}

// RayTo returns the ray from the light to a point. Its parameter at the point is 1.
func (l Light) RayTo(point core.Vec3) core.Ray {
	return core.NewRay(l.Pos, point.Subtract(l.Pos))
}
