// Package texture provides image decoding and texture processing utilities.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// ErrEmptyImage is returned for images with a zero-sized bounds rectangle.
var ErrEmptyImage = errors.New("empty image")

type decoder struct {
	name   string
	magic  string
	decode func(io.Reader) (image.Image, error)
}

// TGA has no signature, so it is the fallback for unrecognised data.
var decoders = []decoder{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode},
	{"jpeg", "\xff\xd8", jpeg.Decode},
	{"gif", "GIF8", gif.Decode},
	{"bmp", "BM", bmp.Decode},
}

// DetectFormat names the image format of data by its signature.
func DetectFormat(data []byte) string {
	for _, d := range decoders {
		if bytes.HasPrefix(data, []byte(d.magic)) {
			return d.name
		}
	}
	return "tga"
}

// Decode decodes PNG, JPEG, GIF, BMP or TGA data into an NRGBA image.
// The detected format name is returned alongside.
func Decode(data []byte) (*image.NRGBA, string, error) {
	format := DetectFormat(data)
	decode := tga.Decode
	for _, d := range decoders {
		if d.name == format {
			decode = d.decode
		}
	}
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("decoding %s image: %w", format, err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return ToNRGBA(img), format, nil
}

// LoadFile reads and decodes an image file.
func LoadFile(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture %s: %w", path, err)
	}
	img, _, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return img, nil
}

// ToNRGBA converts any image to NRGBA with its origin moved to (0,0).
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// FlipVertical reverses the row order of img in place.
// GL expects the first row of texture data to be the bottom of the image.
func FlipVertical(img *image.NRGBA) {
	h := img.Bounds().Dy()
	rowLen := img.Bounds().Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bot := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// Solid returns a w×h image filled with one color.
func Solid(w, h int, r, g, b, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
