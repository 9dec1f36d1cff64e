package loaders

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// MaxTextureSize bounds the longer side of loaded textures. Zero disables the limit.
var MaxTextureSize = 2048

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG image and converts it to Vec3 color array.
// EXIF orientation is applied and images larger than MaxTextureSize are downsampled.
func LoadImage(filename string) (*ImageData, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	bounds := img.Bounds()
	if MaxTextureSize > 0 && (bounds.Dx() > MaxTextureSize || bounds.Dy() > MaxTextureSize) {
		img = imaging.Fit(img, MaxTextureSize, MaxTextureSize, imaging.Lanczos)
	}

	return imageToData(img), nil
}

func imageToData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
