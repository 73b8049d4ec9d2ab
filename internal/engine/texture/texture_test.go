package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, checker()); err != nil {
		t.Fatal(err)
	}

	img, format, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if got := img.NRGBAAt(1, 1); got.A != 128 || got.R != 255 {
		t.Errorf("pixel (1,1) = %v", got)
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, checker()); err != nil {
		t.Fatal(err)
	}

	img, format, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "bmp" {
		t.Errorf("format = %q, want bmp", format)
	}
	if got := img.NRGBAAt(0, 1); got.B != 255 || got.R != 0 {
		t.Errorf("pixel (0,1) = %v", got)
	}
}

func TestDecodeTGA(t *testing.T) {
	// 2x1 uncompressed true-color, BGR order
	data := make([]byte, 18)
	data[2] = 2
	data[12] = 2
	data[14] = 1
	data[16] = 24
	data = append(data, 0, 0, 255, 255, 0, 0)

	img, format, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "tga" {
		t.Errorf("format = %q, want tga", format)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("size = %v", img.Bounds())
	}
	if got := img.NRGBAAt(0, 0); got.R != 255 || got.B != 0 {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
	if got := img.NRGBAAt(1, 0); got.B != 255 || got.R != 0 {
		t.Errorf("pixel (1,0) = %v, want blue", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		data []byte
		want string
	}{
		{[]byte("\x89PNG\r\n\x1a\nrest"), "png"},
		{[]byte{0xff, 0xd8, 0xff}, "jpeg"},
		{[]byte("GIF89a"), "gif"},
		{[]byte("BM...."), "bmp"},
		{[]byte{0, 0, 2}, "tga"},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.data); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.data, got, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, checker()); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "tex.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("width = %d, want 2", img.Bounds().Dx())
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}

func TestToNRGBAMovesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.SetRGBA(5, 5, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	dst := ToNRGBA(src)
	if dst.Bounds().Min != (image.Point{}) {
		t.Errorf("origin = %v, want (0,0)", dst.Bounds().Min)
	}
	if got := dst.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("pixel = %v", got)
	}

	same := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if ToNRGBA(same) != same {
		t.Error("zero-origin NRGBA should be returned as is")
	}
}

func TestFlipVertical(t *testing.T) {
	img := checker()
	FlipVertical(img)

	if got := img.NRGBAAt(0, 0); got.B != 255 {
		t.Errorf("top-left after flip = %v, want blue", got)
	}
	if got := img.NRGBAAt(0, 1); got.R != 255 {
		t.Errorf("bottom-left after flip = %v, want red", got)
	}

	// Odd heights keep the middle row
	odd := Solid(1, 3, 1, 2, 3, 4)
	odd.Pix[4] = 99
	FlipVertical(odd)
	if odd.Pix[4] != 99 {
		t.Error("middle row moved")
	}
}

func TestSolid(t *testing.T) {
	img := Solid(3, 2, 255, 255, 255, 255)
	for i, v := range img.Pix {
		if v != 255 {
			t.Fatalf("Pix[%d] = %d, want 255", i, v)
		}
	}
}
