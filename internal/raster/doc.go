// Package raster provides a dense, row-major 2D sample buffer and the
// traversal views the image filters are built on.
//
// A Raster owns a contiguous buffer of width*height samples; its sample type
// is a type parameter (8-bit intensity for I/O, float32 for filter math).
// Three access paths are provided:
//
//   - Flat: Pix() exposes the whole buffer in row-major order for
//     elementwise transforms (convert, threshold, normalize).
//   - Row-wise: RowBegin()/RowEnd() return RowIterators that advance one
//     row at a time and dereference to a RowRange; Rows() wraps the pair
//     in a range-over-func sequence for plain "for each row" loops.
//   - Windowed: a RowRange can be shifted by elements and sliced to
//     sub-spans, so neighboring rows and columns can be paired without
//     copying pixels or re-deriving offsets from raw indices.
//
// # Coordinate System
//
// Pixel (0,0) is the top-left corner; X increases rightward, Y increases
// downward, and the linear index of (y,x) is x + y*width.
//
// # Views and Ownership
//
// RowRange and RowIterator are non-owning views. They stay valid for as
// long as the Raster they came from; mutating samples through a view is
// visible through every other view of the same Raster.
//
// # Error Handling
//
// Out-of-range access through At, Set, Row, or a view is a caller bug, not
// bad input, and panics rather than returning an error.
package raster
