package gpu

import (
	"bytes"
	"testing"
)

func TestAlignBytesPerRow(t *testing.T) {
	tests := []struct {
		width uint32
		want  uint32
	}{
		{1, 256},
		{50, 256},  // 200 tight
		{64, 256},  // exactly aligned
		{65, 512},  // 260 tight
		{100, 512}, // 400 tight
		{128, 512},
		{512, 2048},
	}
	for _, tt := range tests {
		if got := alignBytesPerRow(tt.width); got != tt.want {
			t.Errorf("alignBytesPerRow(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestStripRowPadding(t *testing.T) {
	const (
		width  = 50
		height = 4
	)
	paddedStride := alignBytesPerRow(width) // 256
	tightStride := uint32(width * 4)        // 200

	padded := make([]byte, paddedStride*height)
	for y := 0; y < height; y++ {
		row := padded[uint32(y)*paddedStride:]
		for x := 0; x < int(tightStride); x++ {
			row[x] = byte(y*31 + x)
		}
		// Padding bytes carry a sentinel that must never leak through.
		for x := int(tightStride); x < int(paddedStride); x++ {
			row[x] = 0xAB
		}
	}

	out := stripRowPadding(padded, paddedStride, width, height)
	if len(out) != int(tightStride)*height {
		t.Fatalf("len(out) = %d, want %d", len(out), int(tightStride)*height)
	}
	for y := 0; y < height; y++ {
		got := out[uint32(y)*tightStride : uint32(y+1)*tightStride]
		want := padded[uint32(y)*paddedStride : uint32(y)*paddedStride+tightStride]
		if !bytes.Equal(got, want) {
			t.Errorf("row %d differs from the first %d bytes of the padded row", y, tightStride)
		}
	}
	if bytes.Contains(out, []byte{0xAB, 0xAB, 0xAB, 0xAB}) {
		t.Error("padding sentinel leaked into stripped output")
	}
}

func TestStripRowPaddingAlignedWidth(t *testing.T) {
	const (
		width  = 64 // tight stride 256, already aligned
		height = 2
	)
	padded := make([]byte, width*4*height)
	for i := range padded {
		padded[i] = byte(i)
	}

	out := stripRowPadding(padded, width*4, width, height)
	if len(out) != len(padded) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(padded))
	}
	if !bytes.Equal(out, padded) {
		t.Error("aligned-width strip should be the identity")
	}
}
