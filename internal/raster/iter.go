package raster

// RowIterator walks a Raster one row at a time. It dereferences to the
// RowRange covering the current row, which lets callers hold "the row
// above" and "the row below" as ordinary values while a destination
// iterator advances in lockstep.
//
// An iterator with RowIndex() == Height() is the end sentinel; advancing
// past it or dereferencing it is a caller bug.
type RowIterator[T Sample] struct {
	row  RowRange[T]
	span int
	y    int
}

// Next advances to the following row.
func (it *RowIterator[T]) Next() {
	it.row = it.row.Shift(it.span)
	it.y++
}

// Add returns an iterator advanced by n rows.
func (it RowIterator[T]) Add(n int) RowIterator[T] {
	it.row = it.row.Shift(n * it.span)
	it.y += n
	return it
}

// Sub returns an iterator moved back by n rows.
func (it RowIterator[T]) Sub(n int) RowIterator[T] { return it.Add(-n) }

// Row returns the view over the current row.
func (it RowIterator[T]) Row() RowRange[T] { return it.row }

// RowIndex returns the current row index.
func (it RowIterator[T]) RowIndex() int { return it.y }

// Eq reports whether two iterators are at the same position. Both the row
// view and the row index must match; positions alone would be ambiguous if
// a shifted view happened to alias a different row.
func (it RowIterator[T]) Eq(o RowIterator[T]) bool {
	return it.row.Eq(o.row) && it.y == o.y
}
