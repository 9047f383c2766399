package raster

import "testing"

func TestNew_ZeroFilled(t *testing.T) {
	img := New[uint8](4, 3)

	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", img.Width(), img.Height())
	}
	if len(img.Pix()) != 12 {
		t.Fatalf("buffer length: got %d, want 12", len(img.Pix()))
	}
	for i, v := range img.Pix() {
		if v != 0 {
			t.Errorf("Pix()[%d]: got %d, want 0", i, v)
		}
	}
}

func TestNew_Empty(t *testing.T) {
	img := New[float32](0, 0)
	if len(img.Pix()) != 0 {
		t.Errorf("empty raster buffer length: got %d, want 0", len(img.Pix()))
	}
	if !img.RowBegin().Eq(img.RowEnd()) {
		t.Error("empty raster: RowBegin should equal RowEnd")
	}
}

func TestNew_NegativeDimensionsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(-1, 2) should panic")
		}
	}()
	New[uint8](-1, 2)
}

func TestAtSet(t *testing.T) {
	img := New[uint8](3, 2)
	img.Set(1, 2, 42)

	if got := img.At(1, 2); got != 42 {
		t.Errorf("At(1,2): got %d, want 42", got)
	}
	// row-major: index = x + y*width
	if got := img.Pix()[2+1*3]; got != 42 {
		t.Errorf("Pix()[5]: got %d, want 42", got)
	}
}

func TestAt_OutOfBoundsPanic(t *testing.T) {
	tests := []struct {
		name string
		y, x int
	}{
		{"negative column", 0, -1},
		{"negative row", -1, 0},
		{"column at width", 0, 3},
		{"row at height", 2, 0},
	}

	img := New[uint8](3, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d,%d) should panic", tt.y, tt.x)
				}
			}()
			img.At(tt.y, tt.x)
		})
	}
}

func TestClone_DeepCopy(t *testing.T) {
	img := New[float32](2, 2)
	img.Set(0, 0, 1.5)

	dup := img.Clone()
	dup.Set(0, 0, 9)

	if got := img.At(0, 0); got != 1.5 {
		t.Errorf("original mutated through clone: got %v, want 1.5", got)
	}
	if got := dup.At(1, 1); got != 0 {
		t.Errorf("clone At(1,1): got %v, want 0", got)
	}
}

// Filling through Set and reading back through flat iteration, row
// iteration, and At must all agree on every sample.
func TestTraversalConsistency(t *testing.T) {
	const w, h = 5, 4
	img := New[uint8](w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(y, x, uint8(10*y+x))
		}
	}

	for i, v := range img.Pix() {
		y, x := i/w, i%w
		if want := img.At(y, x); v != want {
			t.Errorf("flat index %d: got %d, At(%d,%d) = %d", i, v, y, x, want)
		}
	}

	for y, row := range img.Rows() {
		if row.Len() != w {
			t.Fatalf("row %d length: got %d, want %d", y, row.Len(), w)
		}
		for x := 0; x < w; x++ {
			if got, want := row.At(x), img.At(y, x); got != want {
				t.Errorf("row %d col %d: got %d, want %d", y, x, got, want)
			}
		}
	}
}
