package material

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// TestImageTextureEvaluate tests basic texture sampling
func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Color{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Color
	}{
		{"bottom-left", core.NewVec2(0.1, 0.1), black},
		{"bottom-right", core.NewVec2(0.9, 0.1), white},
		{"top-left", core.NewVec2(0.1, 0.9), white},
		{"top-right", core.NewVec2(0.9, 0.9), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, got)
			}
		})
	}
}

// TestImageTextureWrapping tests UV wrapping behavior
func TestImageTextureWrapping(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	texture := NewImageTexture(1, 1, []core.Color{red})

	testCases := []core.Vec2{
		core.NewVec2(0.5, 0.5),
		core.NewVec2(1.5, 0.5),
		core.NewVec2(0.5, 1.5),
		core.NewVec2(-0.5, -0.5),
		core.NewVec2(2.3, 3.7),
		core.NewVec2(1, 1),
	}

	for _, uv := range testCases {
		if got := texture.Evaluate(uv, core.Vec3{}); got != red {
			t.Errorf("UV%v: expected %v, got %v", uv, red, got)
		}
	}
}

func TestImageTextureEmpty(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); !got.IsZero() {
		t.Errorf("Expected black from empty texture, got %v", got)
	}
}

func TestGridPatternEvaluate(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	blue := core.NewColor(0, 0, 1)
	grid := NewGridPattern(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), 2, red, blue)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Color
	}{
		{"origin cell", core.NewVec3(0.5, 0, 0.5), red},
		{"next cell along U", core.NewVec3(2.5, 0, 0.5), blue},
		{"next cell along V", core.NewVec3(0.5, 0, 2.5), blue},
		{"diagonal cell", core.NewVec3(2.5, 0, 2.5), red},
		{"negative U", core.NewVec3(-0.5, 0, 0.5), blue},
		{"negative both", core.NewVec3(-0.5, 0, -0.5), red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid.Evaluate(core.Vec2{}, tt.point); got != tt.expected {
				t.Errorf("Point %v: expected %v, got %v", tt.point, tt.expected, got)
			}
		})
	}
}

func TestGridPattern_SkewedAxesAreOrthogonalized(t *testing.T) {
	grid := NewGridPattern(core.Vec3{}, core.NewVec3(2, 0, 0), core.NewVec3(1, 0, 1), 1, core.Color{}, core.Color{})
	if dot := grid.AxisU.Dot(grid.AxisV); dot > 1e-12 || dot < -1e-12 {
		t.Errorf("Expected orthogonal axes, got dot %f", dot)
	}
	if grid.AxisV != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected AxisV (0,0,1), got %v", grid.AxisV)
	}
}

func TestNewCheckerboardTexture(t *testing.T) {
	a := core.NewColor(1, 1, 1)
	b := core.NewColor(0, 0, 0)
	tex := NewCheckerboardTexture(4, 4, 2, a, b)

	if tex.Pixels[0] != a || tex.Pixels[2] != b || tex.Pixels[2*4] != b || tex.Pixels[2*4+2] != a {
		t.Errorf("Unexpected checkerboard layout: %v", tex.Pixels)
	}
}

func TestNewGradientTexture(t *testing.T) {
	top := core.NewColor(1, 0, 0)
	bottom := core.NewColor(0, 0, 1)
	tex := NewGradientTexture(2, 3, top, bottom)

	if tex.Pixels[0] != top || tex.Pixels[1] != top {
		t.Errorf("Expected top row %v, got %v", top, tex.Pixels[:2])
	}
	if tex.Pixels[4] != bottom {
		t.Errorf("Expected bottom row %v, got %v", bottom, tex.Pixels[4])
	}
	if mid := tex.Pixels[2]; mid != core.NewColor(0.5, 0, 0.5) {
		t.Errorf("Expected midpoint (0.5,0,0.5), got %v", mid)
	}

	// UV (0,1) is the top of the image
	if c := tex.Evaluate(core.Vec2{X: 0.1, Y: 0.99}, core.Vec3{}); c != top {
		t.Errorf("Expected top color at v=0.99, got %v", c)
	}
}
