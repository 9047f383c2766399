package filter

import "github.com/glowmouse/jubilant-waffle/internal/raster"

// GradientX computes the horizontal gradient magnitude
//
//	out[y][x] = |in[y][x+1] - in[y][x-1]|
//
// for every interior column. Columns 0 and width-1 stay zero: there is no
// wraparound and no extrapolation. Each row is computed by pairing two
// overlapping sub-row views (the row shifted left and right by one column)
// against the interior of the destination row.
func GradientX[T raster.Sample](src *raster.Raster[T]) *raster.Raster[T] {
	dst := raster.New[T](src.Width(), src.Height())
	if src.Width() < 3 {
		return dst
	}

	dit := dst.RowBegin()
	end := src.RowEnd()
	for it := src.RowBegin(); !it.Eq(end); it.Next() {
		gradientRow(dit.Row(), it.Row())
		dit.Next()
	}
	return dst
}

// gradientRow writes |right - left| for every interior column of one row.
func gradientRow[T raster.Sample](dst, src raster.RowRange[T]) {
	left := src.DropLast(2).Samples()
	right := src.Drop(2).Samples()
	out := dst.Drop(1).Samples()
	for i, l := range left {
		out[i] = absDiff(right[i], l)
	}
}

// GradientY computes the vertical gradient magnitude
//
//	out[y][x] = |in[y-1][x] - in[y+1][x]|
//
// for every interior row. Rows 0 and height-1 stay zero. Two source
// iterators two rows apart walk in lockstep with a destination iterator
// offset by one row, stopping when the destination reaches the last row.
func GradientY[T raster.Sample](src *raster.Raster[T]) *raster.Raster[T] {
	dst := raster.New[T](src.Width(), src.Height())
	if src.Height() < 3 {
		return dst
	}

	above := src.RowBegin()
	below := src.RowBegin().Add(2)
	dit := dst.RowBegin().Add(1)
	dend := dst.RowEnd().Sub(1)
	for !dit.Eq(dend) {
		rowAbsDiff(dit.Row(), above.Row(), below.Row())
		dit.Next()
		above.Next()
		below.Next()
	}
	return dst
}

// rowAbsDiff writes |a - b| across two full rows into dst.
func rowAbsDiff[T raster.Sample](dst, a, b raster.RowRange[T]) {
	as := a.Samples()
	bs := b.Samples()
	out := dst.Samples()
	for i, av := range as {
		out[i] = absDiff(av, bs[i])
	}
}

func absDiff[T raster.Sample](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
