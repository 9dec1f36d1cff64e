package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// newMaterial returns the default material with the given diffuse color
func newMaterial(diffuse core.Color) *material.Material {
	mat := material.Default()
	mat.DiffuseFact = diffuse
	return mat
}

// NewDefaultScene creates spheres standing on a checkered floor, lit by two point lights
func NewDefaultScene() *Scene {
	s := New(nil, nil)
	s.Name = "default"
	s.CameraConfig = CameraConfig{
		Eye:    core.NewVec3(0, 0.75, 2), // Higher and farther back
		Center: core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
		Width:  400,
		Height: 225,
	}
	s.TraceConfig = TraceConfig{
		MaxDepth:       8, // Glass needs a few bounces to get through both faces
		MinCoefficient: 0.005,
	}

	mirror := newMaterial(core.NewColor(0.2, 0.2, 0.2))
	mirror.ReflectionFact = 0.7
	mirror.SpecularFact = core.NewColor(0.8, 0.8, 0.8)
	mirror.SpecularPower = 64

	glass := newMaterial(core.NewColor(0.05, 0.05, 0.05))
	glass.ReflectionFact = 0.1
	glass.RefractionFact = 0.85
	glass.N = 1.5
	glass.SpecularFact = core.NewColor(1, 1, 1)
	glass.SpecularPower = 128

	plastic := newMaterial(core.NewColor(0.65, 0.25, 0.2))
	plastic.SpecularFact = core.NewColor(0.5, 0.5, 0.5)
	plastic.SpecularPower = 16

	floorFinish := material.Default()
	floorFinish.ReflectionFact = 0.15

	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, mirror))
	s.AddObject(geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, glass))
	s.AddObject(geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, plastic))
	s.AddObject(geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.3), 0.25, newMaterial(core.NewColor(0.1, 0.2, 0.5))))

	// Floor through y=0 with the normal pointing up
	s.AddObject(geometry.NewGridSurface(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.2, 0.3, 0.2),
		0.5,
		floorFinish,
	))

	s.AddLight(lights.NewLight(core.NewVec3(3, 5, 3), core.NewColor(0.7, 0.7, 0.65)))
	s.AddLight(lights.NewLight(core.NewVec3(-4, 3, 1), core.NewColor(0.3, 0.3, 0.4)))

	return s
}
