package render

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"

	qr "github.com/vvgo/qr18004"
)

func checkerMatrix(size int) qr.Matrix {
	m := make(qr.Matrix, size)
	for r := range m {
		m[r] = make([]bool, size)
		for c := range m[r] {
			m[r][c] = (r+c)%2 == 0
		}
	}
	return m
}

func TestImageBoundsAndPixels(t *testing.T) {
	m := checkerMatrix(4)
	im := &Image{Matrix: m, Scale: 2, Dark: [3]byte{1, 2, 3}, Light: [3]byte{250, 251, 252}}
	b := im.Bounds()
	if b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("Bounds() = %v, want an 8x8 rectangle", b)
	}
	r, g, bl, _ := im.At(0, 0).RGBA()
	if byte(r>>8) != 1 || byte(g>>8) != 2 || byte(bl>>8) != 3 {
		t.Errorf("At(0,0) = (%d,%d,%d), want Dark color (1,2,3)", r>>8, g>>8, bl>>8)
	}
	// Module (0,1) is light; scaled 2x, so pixel (2,0) falls in it.
	r, g, bl, _ = im.At(2, 0).RGBA()
	if byte(r>>8) != 250 || byte(g>>8) != 251 || byte(bl>>8) != 252 {
		t.Errorf("At(2,0) = (%d,%d,%d), want Light color (250,251,252)", r>>8, g>>8, bl>>8)
	}
}

func TestImageScaleDefaultsToOne(t *testing.T) {
	im := &Image{Matrix: checkerMatrix(3)}
	b := im.Bounds()
	if b.Dx() != 3 || b.Dy() != 3 {
		t.Errorf("Bounds() = %v, want 3x3 with Scale unset", b)
	}
}

func TestEncodePNGProducesValidImage(t *testing.T) {
	im := &Image{Matrix: checkerMatrix(5), Scale: 3}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, im); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode of our own output: %v", err)
	}
	if decoded.Bounds().Dx() != 15 || decoded.Bounds().Dy() != 15 {
		t.Errorf("decoded size = %v, want 15x15", decoded.Bounds())
	}
}

func TestEncodePBMHeaderAndSize(t *testing.T) {
	im := &Image{Matrix: checkerMatrix(4), Scale: 2}
	var buf bytes.Buffer
	if err := EncodePBM(&buf, im); err != nil {
		t.Fatalf("EncodePBM: %v", err)
	}
	header := fmt.Sprintf("P4\n%d %d\n", 8, 8)
	if got := buf.String()[:len(header)]; got != header {
		t.Errorf("PBM header = %q, want %q", got, header)
	}
	rowBytes := (8 + 7) / 8
	wantLen := len(header) + rowBytes*8
	if buf.Len() != wantLen {
		t.Errorf("PBM output length = %d, want %d", buf.Len(), wantLen)
	}
}
