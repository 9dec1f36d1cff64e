package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestTriangle_ClosestIntersection(t *testing.T) {
	// Triangle in the XY plane
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		shouldHit bool
		expectedT float64
	}{
		{"hits center", core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1), true, 1.0},
		{"hits edge", core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1), true, 1.0},
		{"misses outside", core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1), false, 0},
		{"parallel to plane", core.NewVec3(0.25, 0.25, -1), core.NewVec3(1, 0, 0), false, 0},
		{"behind ray", core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1), false, 0},
		{"from back side", core.NewVec3(0.25, 0.25, 2), core.NewVec3(0, 0, -1), true, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tParam, hit := triangle.ClosestIntersection(query(tt.origin, tt.direction))

			if tt.shouldHit != (tParam != core.NotIntersect) {
				t.Fatalf("Expected hit=%t, got t=%f", tt.shouldHit, tParam)
			}
			if !tt.shouldHit {
				return
			}
			if math.Abs(tParam-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, tParam)
			}
			// Normal always faces the incoming ray
			if hit.Normal().Dot(tt.direction) >= 0 {
				t.Errorf("Expected normal %v to face against %v", hit.Normal(), tt.direction)
			}
		})
	}
}

func TestTriangle_Normal(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), nil)
	if !vecNear(triangle.GetNormal(), core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected normal (0,0,1), got %v", triangle.GetNormal())
	}
}

func TestTriangle_ReflectOffFloor(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(-5, 0, -5), core.NewVec3(5, 0, -5), core.NewVec3(0, 0, 5), nil)
	_, hit := triangle.ClosestIntersection(query(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0)))

	reflected := triangle.Reflect(hit)
	if !vecNear(reflected.Origin, core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected reflection from origin, got %v", reflected.Origin)
	}
	if !vecNear(reflected.Direction, core.NewVec3(1, 1, 0).Normalize()) {
		t.Errorf("Expected upward reflection, got %v", reflected.Direction)
	}
}
