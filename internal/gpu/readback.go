package gpu

// Texture-to-buffer copies require bytesPerRow aligned to 256 bytes, so
// readback goes through a padded staging layout that is tightened to
// width*4 bytes per row on the CPU side.

const rowAlignment = 256

// alignBytesPerRow rounds the tight RGBA row size for width up to the
// copy alignment.
func alignBytesPerRow(width uint32) uint32 {
	return (width*4 + rowAlignment - 1) &^ (rowAlignment - 1)
}

// stripRowPadding converts padded staging data into tightly packed RGBA
// pixels. When the padded stride already equals the tight stride the
// input is returned as-is.
func stripRowPadding(padded []byte, paddedStride, width, height uint32) []byte {
	tightStride := width * 4
	if paddedStride == tightStride {
		return padded[:tightStride*height]
	}
	out := make([]byte, tightStride*height)
	for y := uint32(0); y < height; y++ {
		src := padded[y*paddedStride : y*paddedStride+tightStride]
		copy(out[y*tightStride:], src)
	}
	return out
}
