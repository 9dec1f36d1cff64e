package loaders

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

const meshTolerance = 1e-9

func nearVec(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < meshTolerance &&
		math.Abs(a.Y-b.Y) < meshTolerance &&
		math.Abs(a.Z-b.Z) < meshTolerance
}

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write OBJ: %v", err)
	}
	return path
}

const twoTriangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 2 3
f 1 2 4
`

func TestLoadMesh_OBJ(t *testing.T) {
	triangles, err := LoadMesh(writeOBJ(t, twoTriangleOBJ), IdentityTransform())
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}

	if len(triangles) != 2 {
		t.Fatalf("Expected 2 triangles, got %d", len(triangles))
	}
	expected := [3]core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}
	for i := range expected {
		if !nearVec(triangles[0][i], expected[i]) {
			t.Errorf("Vertex %d: expected %v, got %v", i, expected[i], triangles[0][i])
		}
	}
}

func TestLoadMesh_Transform(t *testing.T) {
	tests := []struct {
		name      string
		transform MeshTransform
		input     core.Vec3
		expected  core.Vec3
	}{
		{
			name:      "identity",
			transform: IdentityTransform(),
			input:     core.NewVec3(1, 2, 3),
			expected:  core.NewVec3(1, 2, 3),
		},
		{
			name:      "rotate z by 90 degrees",
			transform: MeshTransform{RotateZ: 90, Resize: 1},
			input:     core.NewVec3(1, 0, 0),
			expected:  core.NewVec3(0, 1, 0),
		},
		{
			name:      "rotate x by 90 degrees",
			transform: MeshTransform{RotateX: 90, Resize: 1},
			input:     core.NewVec3(0, 1, 0),
			expected:  core.NewVec3(0, 0, 1),
		},
		{
			// Rz applies to the vector first: (1,0,0) -> (0,1,0) -> (0,0,1)
			name:      "rotations compose as Rx*Ry*Rz",
			transform: MeshTransform{RotateX: 90, RotateZ: 90, Resize: 1},
			input:     core.NewVec3(1, 0, 0),
			expected:  core.NewVec3(0, 0, 1),
		},
		{
			name:      "scale then move",
			transform: MeshTransform{Resize: 2, Move: core.NewVec3(10, 0, 0)},
			input:     core.NewVec3(1, 1, 1),
			expected:  core.NewVec3(12, 2, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transform.Apply(tt.input)
			if !nearVec(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLoadMesh_AppliesTransformToFile(t *testing.T) {
	transform := MeshTransform{Resize: 3, Move: core.NewVec3(0, -1, 0)}
	triangles, err := LoadMesh(writeOBJ(t, twoTriangleOBJ), transform)
	if err != nil {
		t.Fatalf("LoadMesh failed: %v", err)
	}

	if !nearVec(triangles[1][2], core.NewVec3(0, -1, 3)) {
		t.Errorf("Expected transformed vertex (0,-1,3), got %v", triangles[1][2])
	}
}

func TestLoadMesh_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"unsupported extension", filepath.Join(t.TempDir(), "mesh.fbx")},
		{"missing file", filepath.Join(t.TempDir(), "missing.obj")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadMesh(tt.path, IdentityTransform()); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
