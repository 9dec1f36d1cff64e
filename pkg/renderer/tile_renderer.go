package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Gamma is the display gamma applied when converting to 8-bit color
const Gamma = 2.0

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, camera *Camera, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderTileBounds renders pixels within bounds into img.
// Tiles never overlap, so concurrent calls on distinct bounds are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := RenderStats{Tiles: 1}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ray := tr.camera.GetRay(i, j)
			c, evaluations := tr.integrator.RayColor(ray, tr.scene)
			img.SetRGBA(i, j, ColorToRGBA(c))

			stats.TotalPixels++
			stats.PrimaryRays++
			stats.ShadingEvaluations += evaluations
		}
	}

	return stats
}

// ColorToRGBA converts a linear color to RGBA with clamping and gamma correction
func ColorToRGBA(c core.Color) color.RGBA {
	c = c.Clamp(0.0, 1.0).GammaCorrect(Gamma)

	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}
