package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewTextureScene creates a row of image panels in front of a mirror ball
func NewTextureScene() *Scene {
	s := New(nil, nil)
	s.Name = "textures"
	s.CameraConfig = CameraConfig{
		Eye:    core.NewVec3(0, 2, 10),
		Center: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50.0,
		Width:  640,
		Height: 360,
	}
	s.TraceConfig = TraceConfig{MaxDepth: 4, MinCoefficient: 0.01}

	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.2, 0.2, 0.8),
	)
	gradient := material.NewGradientTexture(256, 256,
		core.NewColor(1.0, 0.2, 0.2),
		core.NewColor(0.2, 1.0, 0.2),
	)
	brick := material.NewCheckerboardTexture(512, 512, 16,
		core.NewColor(0.7, 0.3, 0.1),
		core.NewColor(0.5, 0.2, 0.05),
	)

	glossy := material.Default()
	glossy.SpecularFact = core.NewColor(0.4, 0.4, 0.4)
	glossy.SpecularPower = 24

	// Panels face +Z toward the camera, left to right
	s.AddObject(geometry.NewImageSurface(
		core.NewVec3(-5, 0, -0.5), core.NewVec3(-2, 0, -0.5), core.NewVec3(-5, 2, -0.5),
		checkerboard, glossy,
	))
	s.AddObject(geometry.NewImageSurface(
		core.NewVec3(-1.5, 0, 0), core.NewVec3(1.5, 0, 0), core.NewVec3(-1.5, 2, 0),
		gradient, nil,
	))
	s.AddObject(geometry.NewImageSurface(
		core.NewVec3(2, 0, -0.5), core.NewVec3(5, 0, -0.5), core.NewVec3(2, 2, -0.5),
		brick, glossy,
	))

	mirror := newMaterial(core.NewColor(0.1, 0.1, 0.1))
	mirror.ReflectionFact = 0.8
	mirror.SpecularFact = core.NewColor(1, 1, 1)
	mirror.SpecularPower = 128
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0.6, 2.5), 0.6, mirror))

	s.AddObject(geometry.NewGridSurface(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewColor(0.6, 0.6, 0.6),
		core.NewColor(0.3, 0.3, 0.3),
		1,
		nil,
	))

	s.AddLight(lights.NewLight(core.NewVec3(0, 8, 8), core.NewColor(0.8, 0.8, 0.8)))
	s.AddLight(lights.NewLight(core.NewVec3(-6, 4, 6), core.NewColor(0.25, 0.25, 0.3)))

	return s
}
