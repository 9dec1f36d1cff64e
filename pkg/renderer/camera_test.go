package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func nearVec(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < 1e-9 &&
		math.Abs(a.Y-b.Y) < 1e-9 &&
		math.Abs(a.Z-b.Z) < 1e-9
}

func TestCamera_CenterPixelLooksAtCenter(t *testing.T) {
	tests := []struct {
		name     string
		eye      core.Vec3
		center   core.Vec3
		expected core.Vec3
	}{
		{"down -Z", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1)},
		{"down -X from afar", core.NewVec3(5, 0, 0), core.NewVec3(0, 0, 0), core.NewVec3(-1, 0, 0)},
		{"tilted", core.NewVec3(0, 3, 4), core.NewVec3(0, 0, 0), core.NewVec3(0, -0.6, -0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(scene.CameraConfig{
				Eye: tt.eye, Center: tt.center, Up: core.NewVec3(0, 1, 0),
				VFov: 60, Width: 3, Height: 3,
			})

			ray := camera.GetRay(1, 1)
			if ray.Origin != tt.eye {
				t.Errorf("Expected origin %v, got %v", tt.eye, ray.Origin)
			}
			if !nearVec(ray.Direction.Normalize(), tt.expected) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction.Normalize())
			}
		})
	}
}

func TestCamera_PixelCenters(t *testing.T) {
	// 90 degree FOV on a square image puts the image plane corners at (±1, ±1, -1)
	camera := NewCamera(scene.CameraConfig{
		Eye: core.NewVec3(0, 0, 0), Center: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
		VFov: 90, Width: 2, Height: 2,
	})

	tests := []struct {
		i, j     int
		expected core.Vec3
	}{
		{0, 0, core.NewVec3(-0.5, 0.5, -1)},
		{1, 0, core.NewVec3(0.5, 0.5, -1)},
		{0, 1, core.NewVec3(-0.5, -0.5, -1)},
		{1, 1, core.NewVec3(0.5, -0.5, -1)},
	}

	for _, tt := range tests {
		got := camera.GetRay(tt.i, tt.j).Direction
		if !nearVec(got, tt.expected) {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.i, tt.j, tt.expected, got)
		}
	}
}

func TestCamera_AspectRatio(t *testing.T) {
	camera := NewCamera(scene.CameraConfig{
		Eye: core.NewVec3(0, 0, 0), Center: core.NewVec3(0, 0, -1), Up: core.NewVec3(0, 1, 0),
		VFov: 90, Width: 4, Height: 2,
	})

	// Rightmost pixel center of a 2:1 image is 3/4 of the way across a viewport 4 wide
	got := camera.GetRay(3, 0).Direction
	if math.Abs(got.X-1.5) > 1e-9 || math.Abs(got.Y-0.5) > 1e-9 {
		t.Errorf("Expected (1.5, 0.5, -1), got %v", got)
	}
}
