package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewTriangleMeshScene creates a box, a pyramid and an icosahedron built as mesh bodies
func NewTriangleMeshScene() *Scene {
	s := New(nil, nil)
	s.Name = "meshes"
	s.CameraConfig = CameraConfig{
		Eye:    core.NewVec3(0, 2, 6),
		Center: core.NewVec3(0, 1, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45.0,
		Width:  600,
		Height: 338,
	}
	s.TraceConfig = TraceConfig{MaxDepth: 5, MinCoefficient: 0.01}

	red := newMaterial(core.NewColor(0.8, 0.2, 0.2))
	red.ReflectionFact = 0.3
	red.SpecularFact = core.NewColor(0.6, 0.6, 0.6)
	red.SpecularPower = 48

	blue := newMaterial(core.NewColor(0.2, 0.3, 0.8))

	gold := newMaterial(core.NewColor(0.8, 0.6, 0.2))
	gold.ReflectionFact = 0.5
	gold.SpecularFact = core.NewColor(1, 0.9, 0.6)
	gold.SpecularPower = 96

	s.AddObject(createBoxMesh(core.NewVec3(-2, 0.5, 0), core.NewVec3(1, 1, 1), 30, red))
	s.AddObject(createPyramidMesh(core.NewVec3(0, 1, 0), 1.5, 2.0, 45, blue))
	s.AddObject(createIcosahedronMesh(core.NewVec3(2, 0.8, 0), 0.8, 60, gold))

	s.AddObject(geometry.NewGridSurface(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewColor(0.7, 0.7, 0.7),
		core.NewColor(0.5, 0.5, 0.5),
		1,
		nil,
	))

	s.AddLight(lights.NewLight(core.NewVec3(5, 10, 5), core.NewColor(0.8, 0.8, 0.8)))
	s.AddLight(lights.NewLight(core.NewVec3(-5, 5, 5), core.NewColor(0.3, 0.3, 0.3)))

	return s
}

// placeMesh rotates local vertices about the Y axis and moves them to center
func placeMesh(local []core.Vec3, faces []int, center core.Vec3, rotateYDeg float64, mat *material.Material) *geometry.Body {
	transform := loaders.IdentityTransform()
	transform.RotateY = rotateYDeg
	transform.Move = center

	vertices := make([]core.Vec3, len(local))
	for i, v := range local {
		vertices[i] = transform.Apply(v)
	}
	return geometry.NewBodyFromMesh(vertices, faces, mat)
}

// createBoxMesh creates a body representing a box
func createBoxMesh(center, size core.Vec3, rotateYDeg float64, mat *material.Material) *geometry.Body {
	h := size.Multiply(0.5)
	vertices := []core.Vec3{
		core.NewVec3(-h.X, -h.Y, -h.Z), // 0: left-bottom-back
		core.NewVec3(+h.X, -h.Y, -h.Z), // 1: right-bottom-back
		core.NewVec3(+h.X, +h.Y, -h.Z), // 2: right-top-back
		core.NewVec3(-h.X, +h.Y, -h.Z), // 3: left-top-back
		core.NewVec3(-h.X, -h.Y, +h.Z), // 4: left-bottom-front
		core.NewVec3(+h.X, -h.Y, +h.Z), // 5: right-bottom-front
		core.NewVec3(+h.X, +h.Y, +h.Z), // 6: right-top-front
		core.NewVec3(-h.X, +h.Y, +h.Z), // 7: left-top-front
	}

	// 2 triangles per face
	faces := []int{
		0, 1, 2, 0, 2, 3, // back
		4, 6, 5, 4, 7, 6, // front
		0, 3, 7, 0, 7, 4, // left
		1, 5, 6, 1, 6, 2, // right
		0, 4, 5, 0, 5, 1, // bottom
		3, 2, 6, 3, 6, 7, // top
	}
	return placeMesh(vertices, faces, center, rotateYDeg, mat)
}

// createPyramidMesh creates a body representing a square pyramid
func createPyramidMesh(center core.Vec3, baseSize, height, rotateYDeg float64, mat *material.Material) *geometry.Body {
	b := baseSize * 0.5
	h := height * 0.5
	vertices := []core.Vec3{
		core.NewVec3(-b, -h, -b), // 0: left-back
		core.NewVec3(+b, -h, -b), // 1: right-back
		core.NewVec3(+b, -h, +b), // 2: right-front
		core.NewVec3(-b, -h, +b), // 3: left-front
		core.NewVec3(0, +h, 0),   // 4: apex
	}

	faces := []int{
		0, 2, 1, 0, 3, 2, // base
		0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4, // sides
	}
	return placeMesh(vertices, faces, center, rotateYDeg, mat)
}

// createIcosahedronMesh creates a body representing an icosahedron with the given circumradius
func createIcosahedronMesh(center core.Vec3, radius, rotateYDeg float64, mat *material.Material) *geometry.Body {
	phi := (1.0 + math.Sqrt(5)) / 2.0
	scale := radius / math.Sqrt(1+phi*phi)

	corners := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0),
		core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi),
		core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1),
		core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}
	vertices := make([]core.Vec3, len(corners))
	for i, c := range corners {
		vertices[i] = c.Multiply(scale)
	}

	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return placeMesh(vertices, faces, center, rotateYDeg, mat)
}
