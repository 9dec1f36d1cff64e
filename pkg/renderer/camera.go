package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Camera generates one primary ray through the center of every pixel
type Camera struct {
	origin          core.Vec3
	upperLeftCorner core.Vec3
	horizontal      core.Vec3 // Full image width in world space
	vertical        core.Vec3 // Full image height in world space
	width, height   int
}

// NewCamera creates a look-at pinhole camera
func NewCamera(config scene.CameraConfig) *Camera {
	width := max(1, config.Width)
	height := max(1, config.Height)
	aspectRatio := float64(width) / float64(height)

	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal basis: w points back toward the eye
	w := config.Eye.Subtract(config.Center).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	upperLeftCorner := config.Eye.
		Subtract(w).
		Subtract(horizontal.Multiply(0.5)).
		Add(vertical.Multiply(0.5))

	return &Camera{
		origin:          config.Eye,
		upperLeftCorner: upperLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		width:           width,
		height:          height,
	}
}

// GetRay returns the ray through the center of pixel (i, j). Row 0 is the top of the image.
func (c *Camera) GetRay(i, j int) core.Ray {
	s := (float64(i) + 0.5) / float64(c.width)
	t := (float64(j) + 0.5) / float64(c.height)

	direction := c.upperLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Subtract(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
