package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// MeshTransform places a loaded mesh in the scene.
// Vertices are rotated by Rx*Ry*Rz, then scaled by Resize, then moved by Move.
type MeshTransform struct {
	RotateX float64 // Degrees
	RotateY float64 // Degrees
	RotateZ float64 // Degrees
	Resize  float64
	Move    core.Vec3
}

// IdentityTransform leaves vertices where the file puts them
func IdentityTransform() MeshTransform {
	return MeshTransform{Resize: 1}
}

// Matrix returns the combined rotation and scale
func (m MeshTransform) Matrix() mgl64.Mat3 {
	rotation := mgl64.Rotate3DX(mgl64.DegToRad(m.RotateX)).
		Mul3(mgl64.Rotate3DY(mgl64.DegToRad(m.RotateY))).
		Mul3(mgl64.Rotate3DZ(mgl64.DegToRad(m.RotateZ)))
	return rotation.Mul(m.Resize)
}

// Apply transforms a single point
func (m MeshTransform) Apply(p core.Vec3) core.Vec3 {
	return applyMatrix(m.Matrix(), m.Move, p)
}

func applyMatrix(matrix mgl64.Mat3, move core.Vec3, p core.Vec3) core.Vec3 {
	v := matrix.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	return core.NewVec3(v[0], v[1], v[2]).Add(move)
}

// LoadMesh reads an .obj, .stl or .ply file and returns its transformed triangles
func LoadMesh(filename string, transform MeshTransform) ([][3]core.Vec3, error) {
	var mesh *fauxgl.Mesh
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".obj":
		mesh, err = fauxgl.LoadOBJ(filename)
	case ".stl":
		mesh, err = fauxgl.LoadSTL(filename)
	case ".ply":
		mesh, err = fauxgl.LoadPLY(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", filename, err)
	}

	matrix := transform.Matrix()
	toScene := func(v fauxgl.Vector) core.Vec3 {
		return applyMatrix(matrix, transform.Move, core.NewVec3(v.X, v.Y, v.Z))
	}

	triangles := make([][3]core.Vec3, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		triangles = append(triangles, [3]core.Vec3{
			toScene(t.V1.Position),
			toScene(t.V2.Position),
			toScene(t.V3.Position),
		})
	}
	return triangles, nil
}
