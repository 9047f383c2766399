// Package pnm reads and writes binary PGM (P5) grayscale rasters, the one
// byte-stream format the pipeline speaks.
//
// The layout is: the magic token "P5", whitespace, the width and height as
// decimal tokens, whitespace, the maximum sample value (always 255 here),
// one whitespace byte, then exactly width*height raw bytes, one per pixel,
// row-major with no padding.
package pnm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/glowmouse/jubilant-waffle/internal/raster"
)

const magic = "P5"

// Decode reads a binary PGM image from r.
func Decode(r io.Reader) (*raster.Raster[uint8], error) {
	br := bufio.NewReader(r)

	tok, err := readToken(br)
	if err != nil {
		return nil, fmt.Errorf("pnm: reading magic: %w", err)
	}
	if tok != magic {
		return nil, fmt.Errorf("pnm: bad magic %q, want %q", tok, magic)
	}

	width, err := readInt(br, "width")
	if err != nil {
		return nil, err
	}
	height, err := readInt(br, "height")
	if err != nil {
		return nil, err
	}
	maxVal, err := readInt(br, "max value")
	if err != nil {
		return nil, err
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("pnm: unsupported max value %d, want 255", maxVal)
	}

	img := raster.New[uint8](width, height)
	if _, err := io.ReadFull(br, img.Pix()); err != nil {
		return nil, fmt.Errorf("pnm: reading %dx%d pixel data: %w", width, height, err)
	}
	return img, nil
}

// Encode writes img to w as a binary PGM image.
func Encode(w io.Writer, img *raster.Raster[uint8]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, img.Width(), img.Height())
	bw.Write(img.Pix())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pnm: writing image: %w", err)
	}
	return nil
}

// readToken skips leading whitespace, then reads up to the next whitespace
// byte, consuming it. The single delimiter after the max-value token is what
// separates the header from the raw pixel bytes.
func readToken(br *bufio.Reader) (string, error) {
	var b byte
	var err error
	for {
		b, err = br.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			break
		}
	}

	tok := []byte{b}
	for {
		b, err = br.ReadByte()
		if err == io.EOF {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

func readInt(br *bufio.Reader, field string) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, fmt.Errorf("pnm: reading %s: %w", field, err)
	}
	n := 0
	for _, c := range []byte(tok) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("pnm: bad %s token %q", field, tok)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
