package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cube-rooted LMS
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b

	lms := core.NewVec3(lc*lc*lc, mc*mc*mc, sc*sc*sc)

	// LMS to linear RGB
	rgb := core.NewColor(
		+4.0767416621*lms.X-3.3077115913*lms.Y+0.2309699292*lms.Z,
		-1.2684380046*lms.X+2.6097574011*lms.Y-0.3413193965*lms.Z,
		-0.0041960863*lms.X-0.7034186147*lms.Y+1.7076147010*lms.Z,
	)
	return rgb.Clamp(0, 1)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 8

// NewSphereGridScene creates a grid of colored spheres whose hue varies along X
// and whose reflectivity varies along Z
func NewSphereGridScene() *Scene {
	s := New(nil, nil)
	s.Name = "spheregrid"
	s.CameraConfig = CameraConfig{
		Eye:    core.NewVec3(4.5, 6, 18),
		Center: core.NewVec3(4.5, 0.8, 4.5), // Center of the grid, slightly lower
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
		Width:  640,
		Height: 360,
	}
	s.TraceConfig = TraceConfig{MaxDepth: 4, MinCoefficient: 0.02}

	// Grid fits in the same 9x9 footprint regardless of size
	targetArea := 9.0
	spacing := targetArea / float64(sphereGridSize-1)
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := float64(i) / float64(sphereGridSize-1) * 360.0
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)
			mat := newMaterial(oklchToRGB(lightness, 0.15, hue))
			mat.ReflectionFact = 0.6 * float64(j) / float64(sphereGridSize-1)
			mat.SpecularFact = core.NewColor(0.6, 0.6, 0.6)
			mat.SpecularPower = 32

			s.AddObject(geometry.NewSphere(core.NewVec3(x, radius, z), radius, mat))
		}
	}

	s.AddObject(geometry.NewGridSurface(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewColor(0.55, 0.55, 0.55),
		core.NewColor(0.45, 0.45, 0.45),
		spacing,
		nil,
	))

	// Warm key light high to the side, cool fill from the camera side
	s.AddLight(lights.NewLight(core.NewVec3(20, 25, 20), core.NewColor(0.85, 0.8, 0.7)))
	s.AddLight(lights.NewLight(core.NewVec3(-5, 10, 15), core.NewColor(0.2, 0.25, 0.3)))

	return s
}
