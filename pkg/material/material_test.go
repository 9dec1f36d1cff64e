package material

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

// hitAt builds a handling ray resolved at t with the given outward normal
func hitAt(origin, direction core.Vec3, t float64, outwardNormal core.Vec3) core.HandlingRay {
	return core.NewHandlingRay(core.NewRay(origin, direction)).Resolve(t, outwardNormal)
}

func TestDefault(t *testing.T) {
	m := Default()
	if m.ReflectionFact != 0 || m.RefractionFact != 0 {
		t.Errorf("Expected no reflection or refraction, got %f/%f", m.ReflectionFact, m.RefractionFact)
	}
	if m.DiffuseFact != core.NewColor(1, 1, 1) {
		t.Errorf("Expected unit diffuse, got %v", m.DiffuseFact)
	}
	if !m.SpecularFact.IsZero() {
		t.Errorf("Expected zero specular, got %v", m.SpecularFact)
	}
	if m.N != 1 {
		t.Errorf("Expected N=1, got %f", m.N)
	}
}

func TestMaterial_Reflect(t *testing.T) {
	m := Default()
	// 45 degree hit on the XZ plane
	h := hitAt(core.NewVec3(-1, 1, 0), core.NewVec3(2, -2, 0), 0.5, core.NewVec3(0, 1, 0))

	reflected := m.Reflect(h)

	if !vecNear(reflected.Origin, core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected reflection to start at hit point, got %v", reflected.Origin)
	}
	expected := core.NewVec3(1, 1, 0).Normalize()
	if !vecNear(reflected.Direction, expected) {
		t.Errorf("Expected direction %v, got %v", expected, reflected.Direction)
	}
}

func TestMaterial_Refract(t *testing.T) {
	tests := []struct {
		name      string
		n         float64
		origin    core.Vec3
		direction core.Vec3
		t         float64
		normal    core.Vec3
		check     func(t *testing.T, dir core.Vec3)
	}{
		{
			name:      "index one passes straight through",
			n:         1,
			origin:    core.NewVec3(-1, 1, 0),
			direction: core.NewVec3(1, -1, 0),
			t:         1,
			normal:    core.NewVec3(0, 1, 0),
			check: func(t *testing.T, dir core.Vec3) {
				if !vecNear(dir, core.NewVec3(1, -1, 0).Normalize()) {
					t.Errorf("Expected unbent direction, got %v", dir)
				}
			},
		},
		{
			name:      "entering denser medium bends toward normal",
			n:         1.5,
			origin:    core.NewVec3(-1, 1, 0),
			direction: core.NewVec3(1, -1, 0),
			t:         1,
			normal:    core.NewVec3(0, 1, 0),
			check: func(t *testing.T, dir core.Vec3) {
				sinOut := dir.Normalize().X
				expected := math.Sin(math.Pi/4) / 1.5
				if math.Abs(sinOut-expected) > 1e-9 {
					t.Errorf("Expected sin %f, got %f", expected, sinOut)
				}
				if dir.Y >= 0 {
					t.Errorf("Expected ray to continue downward, got %v", dir)
				}
			},
		},
		{
			name: "total internal reflection falls back to mirror",
			n:    1.5,
			// Leaving the medium at a grazing angle: ray travels along the outward normal side
			origin:    core.NewVec3(-1, -0.2, 0),
			direction: core.NewVec3(1, 0.2, 0),
			t:         1,
			normal:    core.NewVec3(0, 1, 0),
			check: func(t *testing.T, dir core.Vec3) {
				if dir.Y >= 0 {
					t.Errorf("Expected reflection back into the medium, got %v", dir)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Default()
			m.N = tt.n
			h := hitAt(tt.origin, tt.direction, tt.t, tt.normal)
			refracted := m.Refract(h)
			if !vecNear(refracted.Origin, h.HitPoint()) {
				t.Errorf("Expected refraction to start at hit point %v, got %v", h.HitPoint(), refracted.Origin)
			}
			tt.check(t, refracted.Direction)
		})
	}
}

func TestMaterial_Lambert(t *testing.T) {
	m := Default()
	m.DiffuseFact = core.NewColor(0.5, 1, 0.25)
	light := core.NewColor(1, 1, 1)

	t.Run("head-on", func(t *testing.T) {
		h := hitAt(core.NewVec3(0, 5, 0), core.NewVec3(0, -5, 0), 1, core.NewVec3(0, 1, 0))
		got := m.Lambert(h, light, core.NewColor(1, 1, 1))
		if !vecNear(got, core.NewColor(0.5, 1, 0.25)) {
			t.Errorf("Expected diffuse fact, got %v", got)
		}
	})

	t.Run("sixty degrees", func(t *testing.T) {
		dir := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
		h := hitAt(dir.Negate(), dir, 1, core.NewVec3(0, 1, 0))
		got := m.Lambert(h, light, core.NewColor(1, 1, 1))
		if !vecNear(got, core.NewColor(0.25, 0.5, 0.125)) {
			t.Errorf("Expected half diffuse, got %v", got)
		}
	})

	t.Run("albedo tints response", func(t *testing.T) {
		h := hitAt(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 5, core.NewVec3(0, 1, 0))
		got := m.Lambert(h, core.NewColor(2, 2, 2), core.NewColor(1, 0, 1))
		if !vecNear(got, core.NewColor(1, 0, 0.5)) {
			t.Errorf("Expected tinted response, got %v", got)
		}
	})
}
