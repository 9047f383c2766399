// Package filter implements the per-pixel stages of the pipeline: sample
// type conversion, directional gradients, gradient merging, thresholding,
// normalization and 8-bit quantization.
//
// Every filter is a pure function: it allocates a fresh output raster of
// the input's dimensions and never mutates its input. The directional
// gradients leave a one-pixel border at zero instead of extrapolating; this
// border policy is deliberate and relied on downstream.
package filter
