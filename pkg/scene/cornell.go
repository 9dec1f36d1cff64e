package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// cornellBoxSize is the edge length of the standard Cornell box
const cornellBoxSize = 555.0

// NewCornellScene creates a Cornell box with a mirror ball and a glass ball under a ceiling light
func NewCornellScene() *Scene {
	s := New(nil, nil)
	s.Name = "cornell"
	s.CameraConfig = CameraConfig{
		Eye:    core.NewVec3(278, 278, -800), // Outside the box looking in
		Center: core.NewVec3(278, 278, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
		Width:  400,
		Height: 400,
	}
	s.TraceConfig = TraceConfig{
		MaxDepth:       10,
		MinCoefficient: 0.01,
	}

	white := newMaterial(core.NewColor(0.73, 0.73, 0.73))
	red := newMaterial(core.NewColor(0.65, 0.05, 0.05))
	green := newMaterial(core.NewColor(0.12, 0.45, 0.15))

	// Walls are untextured parallelograms: corner, corner+u, corner+v
	wall := func(corner, u, v core.Vec3, mat *material.Material) geometry.Surface {
		return geometry.NewImageSurface(corner, corner.Add(u), corner.Add(v), nil, mat)
	}
	x := core.NewVec3(cornellBoxSize, 0, 0)
	y := core.NewVec3(0, cornellBoxSize, 0)
	z := core.NewVec3(0, 0, cornellBoxSize)
	origin := core.NewVec3(0, 0, 0)

	s.AddObject(wall(origin, x, z, white)) // Floor
	s.AddObject(wall(y, x, z, white))      // Ceiling
	s.AddObject(wall(z, x, y, white))      // Back
	s.AddObject(wall(origin, z, y, red))   // Left
	s.AddObject(wall(x, z, y, green))      // Right

	mirror := newMaterial(core.NewColor(0.1, 0.1, 0.1))
	mirror.ReflectionFact = 0.8
	mirror.SpecularFact = core.NewColor(1, 1, 1)
	mirror.SpecularPower = 100

	glass := newMaterial(core.NewColor(0.02, 0.02, 0.02))
	glass.ReflectionFact = 0.05
	glass.RefractionFact = 0.9
	glass.N = 1.5
	glass.SpecularFact = core.NewColor(1, 1, 1)
	glass.SpecularPower = 200

	s.AddObject(geometry.NewSphere(core.NewVec3(185, 100, 170), 100, mirror))
	s.AddObject(geometry.NewSphere(core.NewVec3(370, 90, 350), 90, glass))

	// Light hangs just below the ceiling so the ceiling does not shadow it
	s.AddLight(lights.NewLight(core.NewVec3(278, 540, 278), core.NewColor(0.9, 0.85, 0.8)))
	s.AddLight(lights.NewLight(core.NewVec3(278, 278, -400), core.NewColor(0.15, 0.15, 0.15)))

	return s
}
