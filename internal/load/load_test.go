package load

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage_Luma(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(1, 0, color.Gray{200})
	img.SetGray(2, 1, color.Gray{50})

	got := FromImage(img, GrayLuma)

	if got.Width() != 3 || got.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", got.Width(), got.Height())
	}
	// luma of an already-gray pixel is the pixel, modulo rounding
	assertNear(t, got.At(0, 1), 200)
	assertNear(t, got.At(1, 2), 50)
}

func assertNear(t *testing.T, got, want uint8) {
	t.Helper()
	diff := int(got) - int(want)
	if diff < -1 || diff > 1 {
		t.Errorf("intensity: got %d, want %d (±1)", got, want)
	}
}

func TestFromImage_NonZeroOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 13, 22))
	img.SetGray(10, 20, color.Gray{99})

	got := FromImage(img, GrayLuma)

	if got.Width() != 3 || got.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", got.Width(), got.Height())
	}
	assertNear(t, got.At(0, 0), 99)
}

func TestFromImage_LightnessExtremes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.Black)

	got := FromImage(img, GrayLightness)

	if v := got.At(0, 0); v != 255 {
		t.Errorf("white pixel lightness: got %d, want 255", v)
	}
	if v := got.At(0, 1); v != 0 {
		t.Errorf("black pixel lightness: got %d, want 0", v)
	}
}

func TestParseGrayMode(t *testing.T) {
	tests := []struct {
		in      string
		want    GrayMode
		wantErr bool
	}{
		{"luma", GrayLuma, false},
		{"lab", GrayLightness, false},
		{"hsv", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseGrayMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGrayMode(%q) error: %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseGrayMode(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSmooth_ZeroRadiusIdentity(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	if got := Smooth(img, 0); got != image.Image(img) {
		t.Error("Smooth with radius 0 should return the input unchanged")
	}
}

func TestSmooth_SpreadsBrightSpot(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 9, 9))
	img.SetGray(4, 4, color.Gray{255})

	blurred := Smooth(img, 2)
	out := FromImage(blurred, GrayLuma)

	if center := out.At(4, 4); center >= 255 {
		t.Errorf("center after blur: got %d, want < 255", center)
	}
	if neighbor := out.At(4, 5); neighbor == 0 {
		t.Error("neighbor should receive some brightness from blur")
	}
}

func TestToImage_RoundTrip(t *testing.T) {
	src := FromImage(image.NewGray(image.Rect(0, 0, 3, 3)), GrayLuma)
	src.Set(2, 1, 77)

	img := ToImage(src)

	if img.GrayAt(1, 2).Y != 77 {
		t.Errorf("GrayAt(1,2): got %d, want 77", img.GrayAt(1, 2).Y)
	}
}
