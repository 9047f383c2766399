// Package hough accumulates a Hough-transform vote space for detecting
// line-like structures in a binary edge map.
package hough

import (
	"math"

	"github.com/glowmouse/jubilant-waffle/internal/raster"
)

// Default accumulator parameters.
const (
	DefaultAngleBins  = 720
	DefaultRadiusBins = 720
	DefaultVoteWeight = 0.003
)

// Params configures the accumulator dimensions and the weight added per
// (edge pixel, angle bin) vote.
type Params struct {
	AngleBins  int
	RadiusBins int
	VoteWeight float32
}

// DefaultParams returns the stock 720x720 accumulator configuration.
func DefaultParams() Params {
	return Params{
		AngleBins:  DefaultAngleBins,
		RadiusBins: DefaultRadiusBins,
		VoteWeight: DefaultVoteWeight,
	}
}

// Accumulate builds the vote space for a binary edge map. Every pixel with
// value >= 0.5 votes once per angle bin: for angle theta = j*pi/angleBins
// the pixel at column x, row y lies on the line with normal distance
//
//	r = x*cos(theta) + y*sin(theta)
//
// which is binned as radiusBins/2 + r/dr (truncated), with
// dr = rMax/(radiusBins/2) and rMax the image diagonal. |r| is strictly
// below rMax for every in-image pixel, so every vote lands inside the
// accumulator; an out-of-range bin would panic as a contract violation.
//
// The returned raster is angleBins wide and radiusBins tall and holds raw,
// un-normalized vote sums.
func Accumulate(edges *raster.Raster[float32], p Params) *raster.Raster[float32] {
	acc := raster.New[float32](p.AngleBins, p.RadiusBins)

	w := float64(edges.Width())
	h := float64(edges.Height())
	rMax := math.Sqrt(w*w + h*h)
	dr := rMax / (float64(p.RadiusBins) / 2)

	sin := make([]float64, p.AngleBins)
	cos := make([]float64, p.AngleBins)
	for j := range sin {
		sin[j], cos[j] = math.Sincos(float64(j) * math.Pi / float64(p.AngleBins))
	}

	half := p.RadiusBins / 2
	for y, row := range edges.Rows() {
		for x, v := range row.Samples() {
			if v < 0.5 {
				continue
			}
			for j := 0; j < p.AngleBins; j++ {
				r := float64(x)*cos[j] + float64(y)*sin[j]
				bin := half + int(r/dr)
				acc.Set(bin, j, acc.At(bin, j)+p.VoteWeight)
			}
		}
	}
	return acc
}
