package framebuffer

import (
	"bytes"
	"testing"
)

func TestFlipRows(t *testing.T) {
	tests := []struct {
		name   string
		pix    []byte
		stride int
		want   []byte
	}{
		{"three rows", []byte{1, 1, 2, 2, 3, 3}, 2, []byte{3, 3, 2, 2, 1, 1}},
		{"two rows", []byte{1, 2, 3, 4}, 2, []byte{3, 4, 1, 2}},
		{"single row", []byte{1, 2, 3}, 3, []byte{1, 2, 3}},
		{"empty", nil, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			FlipRows(tt.pix, tt.stride)
			if !bytes.Equal(tt.pix, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, tt.pix)
			}
		})
	}
}
