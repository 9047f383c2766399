package raster

import "fmt"

// RowRange is a non-owning view over the contiguous span [lo, hi) of samples
// inside one Raster's buffer: a whole row, or a sub-span of one (e.g. a row
// minus its margin columns).
//
// The bounds are stored as element offsets rather than slice headers so the
// one-past-the-end sentinel row can be represented without slicing past the
// buffer; the buffer is only touched on At, Set, or Samples.
type RowRange[T Sample] struct {
	buf    []T
	lo, hi int
}

// Len returns the number of samples in the span.
func (rr RowRange[T]) Len() int { return rr.hi - rr.lo }

// At returns the sample at offset i within the span.
func (rr RowRange[T]) At(i int) T {
	rr.check(i)
	return rr.buf[rr.lo+i]
}

// Set stores v at offset i within the span.
func (rr RowRange[T]) Set(i int, v T) {
	rr.check(i)
	rr.buf[rr.lo+i] = v
}

func (rr RowRange[T]) check(i int) {
	if i < 0 || rr.lo+i >= rr.hi {
		panic(fmt.Sprintf("raster: offset %d outside span of %d samples", i, rr.Len()))
	}
}

// Samples exposes the span as a mutable slice of the underlying buffer.
func (rr RowRange[T]) Samples() []T { return rr.buf[rr.lo:rr.hi] }

// Shift returns the view moved by n elements (not rows); negative n moves
// backward. Shifting by the image width moves down one row.
func (rr RowRange[T]) Shift(n int) RowRange[T] {
	rr.lo += n
	rr.hi += n
	return rr
}

// Slice returns the sub-span [lo, hi), relative to this view.
func (rr RowRange[T]) Slice(lo, hi int) RowRange[T] {
	if lo < 0 || hi < lo || hi > rr.Len() {
		panic(fmt.Sprintf("raster: slice [%d,%d) outside span of %d samples", lo, hi, rr.Len()))
	}
	return RowRange[T]{buf: rr.buf, lo: rr.lo + lo, hi: rr.lo + hi}
}

// Drop returns the view without its first n samples.
func (rr RowRange[T]) Drop(n int) RowRange[T] { return rr.Slice(n, rr.Len()) }

// DropLast returns the view without its last n samples.
func (rr RowRange[T]) DropLast(n int) RowRange[T] { return rr.Slice(0, rr.Len()-n) }

// Eq reports whether two views cover identical buffer positions.
func (rr RowRange[T]) Eq(o RowRange[T]) bool {
	return rr.lo == o.lo && rr.hi == o.hi
}
