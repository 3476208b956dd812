package meshview

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ImageFromRGBA wraps a tightly packed RGBA readback buffer as an
// image.NRGBA without copying. The buffer must be exactly w*h*4 bytes.
func ImageFromRGBA(pix []byte, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("meshview: invalid image size %dx%d", w, h)
	}
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("meshview: pixel buffer is %d bytes, want %d", len(pix), w*h*4)
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

// Thumbnail downscales img so its larger dimension is at most maxDim,
// preserving aspect ratio. Images already within the bound are copied
// at full size.
func Thumbnail(img image.Image, maxDim int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxDim || h > maxDim {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
