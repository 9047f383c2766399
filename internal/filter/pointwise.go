package filter

import (
	"fmt"

	"github.com/glowmouse/jubilant-waffle/internal/raster"
)

// Convert produces a raster of a new sample type, multiplying every sample
// by scale. Converting 8-bit input with scale 1/255 yields float intensities
// in [0,1]; the float-to-integer direction truncates, like the quantizer.
func Convert[D, S raster.Sample](src *raster.Raster[S], scale float64) *raster.Raster[D] {
	dst := raster.New[D](src.Width(), src.Height())
	out := dst.Pix()
	for i, v := range src.Pix() {
		out[i] = D(float64(v) * scale)
	}
	return dst
}

// Combine merges two gradient maps elementwise as min(a+b, 1). The inputs
// must have identical dimensions.
func Combine(a, b *raster.Raster[float32]) *raster.Raster[float32] {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		panic(fmt.Sprintf("filter: combining %dx%d with %dx%d raster",
			a.Width(), a.Height(), b.Width(), b.Height()))
	}

	dst := raster.New[float32](a.Width(), a.Height())
	out := dst.Pix()
	bs := b.Pix()
	for i, av := range a.Pix() {
		s := av + bs[i]
		if s > 1 {
			s = 1
		}
		out[i] = s
	}
	return dst
}

// Threshold produces a binary raster: 1 where the sample exceeds level,
// 0 elsewhere.
func Threshold(src *raster.Raster[float32], level float32) *raster.Raster[float32] {
	dst := raster.New[float32](src.Width(), src.Height())
	out := dst.Pix()
	for i, v := range src.Pix() {
		if v > level {
			out[i] = 1
		}
	}
	return dst
}

// Normalize scales every sample by the maximum so the output lies in [0,1].
// An all-zero raster is returned unchanged rather than dividing by zero.
func Normalize(src *raster.Raster[float32]) *raster.Raster[float32] {
	dst := src.Clone()

	var max float32
	for _, v := range dst.Pix() {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return dst
	}

	pix := dst.Pix()
	for i := range pix {
		pix[i] /= max
	}
	return dst
}

// Quantize maps [0,1] float samples to 8-bit intensities, truncating.
func Quantize(src *raster.Raster[float32]) *raster.Raster[uint8] {
	return Convert[uint8](src, 255)
}
