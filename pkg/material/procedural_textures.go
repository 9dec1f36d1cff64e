package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// GridPattern is a checkerboard laid out on a plane.
// Cells are CellWidth wide along the unit axes AxisU and AxisV starting at Origin.
type GridPattern struct {
	Origin    core.Vec3
	AxisU     core.Vec3
	AxisV     core.Vec3
	CellWidth float64
	Color1    core.Color
	Color2    core.Color
}

// NewGridPattern creates a checkerboard on the plane spanned by axisU and axisV.
// axisV is made orthogonal to axisU so cells stay square on skewed inputs.
func NewGridPattern(origin, axisU, axisV core.Vec3, cellWidth float64, color1, color2 core.Color) *GridPattern {
	u := axisU.Normalize()
	v := axisV.Subtract(u.Multiply(axisV.Dot(u))).Normalize()
	if cellWidth <= 0 {
		cellWidth = 1
	}
	return &GridPattern{
		Origin:    origin,
		AxisU:     u,
		AxisV:     v,
		CellWidth: cellWidth,
		Color1:    color1,
		Color2:    color2,
	}
}

// Evaluate returns the color of the cell containing point
func (g *GridPattern) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	local := point.Subtract(g.Origin)
	cellU := int64(math.Floor(local.Dot(g.AxisU) / g.CellWidth))
	cellV := int64(math.Floor(local.Dot(g.AxisV) / g.CellWidth))

	if (cellU+cellV)%2 == 0 {
		return g.Color1
	}
	return g.Color2
}

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			if (checkX+checkY)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 at the top row to color2 at the bottom
func NewGradientTexture(width, height int, color1, color2 core.Color) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		row := color1.Multiply(1.0 - t).Add(color2.Multiply(t))
		for x := 0; x < width; x++ {
			pixels[y*width+x] = row
		}
	}

	return NewImageTexture(width, height, pixels)
}
