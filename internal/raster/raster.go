package raster

import (
	"fmt"
	"iter"
)

// Sample is the set of pixel sample types a Raster can hold.
type Sample interface {
	~uint8 | ~float32 | ~float64
}

// Raster is a dense 2D sample buffer with fixed dimensions.
//
// The zero value is an empty (0x0) raster. The buffer always holds exactly
// width*height samples in row-major order; the only way to change dimensions
// is to construct a new Raster.
type Raster[T Sample] struct {
	width  int
	height int
	pix    []T
}

// New returns a zero-filled raster of the given dimensions.
// Negative dimensions panic.
func New[T Sample](width, height int) *Raster[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("raster: invalid dimensions %dx%d", width, height))
	}
	return &Raster[T]{
		width:  width,
		height: height,
		pix:    make([]T, width*height),
	}
}

// Width returns the number of columns.
func (r *Raster[T]) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster[T]) Height() int { return r.height }

// At returns the sample at row y, column x.
func (r *Raster[T]) At(y, x int) T {
	r.check(y, x)
	return r.pix[x+y*r.width]
}

// Set stores v at row y, column x.
func (r *Raster[T]) Set(y, x int, v T) {
	r.check(y, x)
	r.pix[x+y*r.width] = v
}

func (r *Raster[T]) check(y, x int) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d image", y, x, r.width, r.height))
	}
}

// Pix exposes the backing buffer in row-major order. Mutations are visible
// through every view of the raster; the caller must not grow or shrink it.
func (r *Raster[T]) Pix() []T { return r.pix }

// Clone returns a deep copy with its own buffer.
func (r *Raster[T]) Clone() *Raster[T] {
	dup := &Raster[T]{width: r.width, height: r.height, pix: make([]T, len(r.pix))}
	copy(dup.pix, r.pix)
	return dup
}

// Row returns the view over row y.
func (r *Raster[T]) Row(y int) RowRange[T] {
	if y < 0 || y >= r.height {
		panic(fmt.Sprintf("raster: row %d outside %d rows", y, r.height))
	}
	return RowRange[T]{buf: r.pix, lo: y * r.width, hi: (y + 1) * r.width}
}

// RowBegin returns an iterator positioned on the first row.
func (r *Raster[T]) RowBegin() RowIterator[T] {
	return RowIterator[T]{
		row:  RowRange[T]{buf: r.pix, lo: 0, hi: r.width},
		span: r.width,
		y:    0,
	}
}

// RowEnd returns the one-past-the-last-row sentinel. Its RowRange must not
// be dereferenced.
func (r *Raster[T]) RowEnd() RowIterator[T] {
	n := r.width * r.height
	return RowIterator[T]{
		row:  RowRange[T]{buf: r.pix, lo: n, hi: n + r.width},
		span: r.width,
		y:    r.height,
	}
}

// Rows yields each row index and its RowRange, top to bottom.
func (r *Raster[T]) Rows() iter.Seq2[int, RowRange[T]] {
	return func(yield func(int, RowRange[T]) bool) {
		end := r.RowEnd()
		for it := r.RowBegin(); !it.Eq(end); it.Next() {
			if !yield(it.RowIndex(), it.Row()) {
				return
			}
		}
	}
}
