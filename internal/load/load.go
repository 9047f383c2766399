// Package load bridges decoded image.Image values and the pipeline's 8-bit
// Raster. It handles ordinary raster formats (PNG, JPEG, GIF, BMP, TIFF),
// collapses color to grayscale, and offers optional pre-smoothing.
package load

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/glowmouse/jubilant-waffle/internal/raster"
)

// GrayMode selects how color samples collapse to a single intensity.
type GrayMode int

const (
	// GrayLuma uses ITU-R BT.601 luma weights (0.299R + 0.587G + 0.114B).
	GrayLuma GrayMode = iota

	// GrayLightness uses the L component of CIE Lab, a perceptual
	// lightness that tracks how bright colors look rather than how much
	// light they emit. Slower, as every pixel goes through a color-space
	// conversion.
	GrayLightness
)

// ParseGrayMode maps the CLI spelling of a grayscale mode to its value.
func ParseGrayMode(s string) (GrayMode, error) {
	switch s {
	case "luma":
		return GrayLuma, nil
	case "lab":
		return GrayLightness, nil
	default:
		return 0, fmt.Errorf("load: unknown grayscale mode %q (want luma or lab)", s)
	}
}

// Open decodes the image file at path using whichever registered decoder
// matches its contents.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load: decoding %s: %w", path, err)
	}
	return img, nil
}

// Smooth applies a Gaussian blur with the given radius. A radius of zero or
// less returns the input unchanged.
func Smooth(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}

// FromImage flattens img into an 8-bit grayscale raster.
func FromImage(img image.Image, mode GrayMode) *raster.Raster[uint8] {
	if mode == GrayLightness {
		return fromLightness(img)
	}

	gray := imaging.Grayscale(img)
	bounds := gray.Bounds()
	dst := raster.New[uint8](bounds.Dx(), bounds.Dy())
	for y, row := range dst.Rows() {
		for x := 0; x < dst.Width(); x++ {
			// Grayscale output has R == G == B
			row.Set(x, gray.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y).R)
		}
	}
	return dst
}

func fromLightness(img image.Image) *raster.Raster[uint8] {
	bounds := img.Bounds()
	dst := raster.New[uint8](bounds.Dx(), bounds.Dy())
	for y, row := range dst.Rows() {
		for x := 0; x < dst.Width(); x++ {
			c, ok := colorful.MakeColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if !ok {
				continue // fully transparent, leave black
			}
			l, _, _ := c.Lab()
			if l < 0 {
				l = 0
			} else if l > 1 {
				l = 1
			}
			row.Set(x, uint8(l*255+0.5))
		}
	}
	return dst
}

// ToImage copies the raster into a stdlib grayscale image for encoding.
func ToImage(r *raster.Raster[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width(), r.Height()))
	copy(img.Pix, r.Pix())
	return img
}
