// Package pipeline wires the processing stages into the full
// read -> convert -> gradient -> threshold -> hough -> normalize -> quantize
// sequence. Every stage runs to completion before the next begins and owns
// its own output raster; nothing here is concurrent.
package pipeline

import (
	"github.com/glowmouse/jubilant-waffle/internal/filter"
	"github.com/glowmouse/jubilant-waffle/internal/hough"
	"github.com/glowmouse/jubilant-waffle/internal/raster"
)

// Run processes an 8-bit grayscale raster and returns the emitted image.
//
// In edge mode the output has the input's dimensions; in hough mode it has
// the accumulator's dimensions (AngleBins x RadiusBins), since the final
// artifact is the vote space, not the edge map.
func Run(src *raster.Raster[uint8], cfg Config) (*raster.Raster[uint8], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	intensity := filter.Convert[float32](src, cfg.Scale)
	gx := filter.GradientX(intensity)
	gy := filter.GradientY(intensity)
	edges := filter.Threshold(filter.Combine(gx, gy), cfg.Threshold)

	if cfg.Output == OutputEdgeMap {
		return filter.Quantize(edges), nil
	}

	votes := hough.Accumulate(edges, hough.Params{
		AngleBins:  cfg.AngleBins,
		RadiusBins: cfg.RadiusBins,
		VoteWeight: cfg.VoteWeight,
	})
	return filter.Quantize(filter.Normalize(votes)), nil
}
