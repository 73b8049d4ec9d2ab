package debug

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/pkg/mesh"
)

func TestBoxLines(t *testing.T) {
	b := mesh.Bounds{Min: mgl32.Vec3{-1, -2, -3}, Max: mgl32.Vec3{1, 2, 3}}
	red := mgl32.Vec3{1, 0, 0}

	lines := BoxLines(b, mgl32.Ident4(), red)
	if len(lines) != BoxLineVertexCount {
		t.Fatalf("expected %d vertices, got %d", BoxLineVertexCount, len(lines))
	}

	for i := 0; i < len(lines); i += 2 {
		d := lines[i+1].Position.Sub(lines[i].Position)
		axes := 0
		for k := 0; k < 3; k++ {
			if d[k] != 0 {
				axes++
			}
		}
		if axes != 1 {
			t.Errorf("edge %d is not axis aligned: %v -> %v", i/2, lines[i].Position, lines[i+1].Position)
		}
		if lines[i].Color != red {
			t.Errorf("edge %d has color %v", i/2, lines[i].Color)
		}
	}
}

func TestBoxLinesTransformed(t *testing.T) {
	b := mesh.Bounds{Max: mgl32.Vec3{1, 1, 1}}
	lines := BoxLines(b, mgl32.Translate3D(10, 0, 0), mgl32.Vec3{})

	for _, v := range lines {
		if v.Position[0] < 10 || v.Position[0] > 11 {
			t.Fatalf("vertex not translated: %v", v.Position)
		}
	}
}

func TestGridLines(t *testing.T) {
	lines := GridLines(2, 0.5, -0.9, mgl32.Vec3{0.3, 0.3, 0.3})
	if len(lines) != 5*4 {
		t.Fatalf("expected 20 vertices, got %d", len(lines))
	}
	for _, v := range lines {
		if v.Position[1] != -0.9 {
			t.Fatalf("grid vertex off plane: %v", v.Position)
		}
	}
	if GridLines(0, 1, 0, mgl32.Vec3{}) != nil {
		t.Error("expected no lines for an empty grid")
	}
}

func TestPackLines(t *testing.T) {
	packed := PackLines(AxisLines(2))
	if len(packed) != 6*LineVertexFloats {
		t.Fatalf("expected %d floats, got %d", 6*LineVertexFloats, len(packed))
	}
	// Second vertex: +X end, red.
	want := []float32{2, 0, 0, 1, 0, 0}
	for i, w := range want {
		if packed[LineVertexFloats+i] != w {
			t.Errorf("float %d: expected %f, got %f", i, w, packed[LineVertexFloats+i])
		}
	}
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.NRGBA{R: 255, A: 255})
	return img
}

func TestScreenshotCapture(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(filepath.Join(dir, "shots"), "launchpad")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	path, err := sc.Capture(testImage())
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if !strings.HasSuffix(path, "launchpad_2024-05-01_12-30-00.000.png") {
		t.Errorf("unexpected filename %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading screenshot: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}
	if r, _, _, _ := img.At(1, 2).RGBA(); r != 0xffff {
		t.Errorf("expected red pixel, got r=%d", r)
	}
}

func TestEncodeImage(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeImage(&buf, testImage(), "webp"); err != nil {
		t.Fatalf("webp encode failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("RIFF")) {
		t.Error("expected a RIFF container")
	}

	if err := EncodeImage(&buf, testImage(), "gif"); err == nil {
		t.Error("expected unsupported format error")
	}
}
