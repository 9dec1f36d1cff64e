package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels        int           // Total number of pixels rendered
	PrimaryRays        int           // Camera rays traced
	ShadingEvaluations int           // Phong evaluations across all bounces
	Tiles              int           // Tiles completed
	Duration           time.Duration // Wall time of the whole render
}

// Add accumulates another tile's statistics
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
	s.ShadingEvaluations += other.ShadingEvaluations
	s.Tiles += other.Tiles
}

// AverageBounces returns shading evaluations per primary ray
func (s RenderStats) AverageBounces() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.ShadingEvaluations) / float64(s.PrimaryRays)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255.0
		}
	}
	return total / float64(pixels)
}
