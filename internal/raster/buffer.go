package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Row 0 is the top row while drawing; Image flips it for output.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, -inf when untouched; nil without depth
}

// NewFrameBuffer allocates a zeroed color buffer. When depth is true a
// parallel z-buffer initialized to -inf is allocated as well.
func NewFrameBuffer(w, h int, depth bool) *FrameBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
	}
	if depth {
		fb.ZBuf = make([]float64, n)
		fb.ClearDepth()
	}
	return fb
}

// Clear fills every pixel with c.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
}

// ClearDepth resets the z-buffer to -inf. No-op without depth.
func (fb *FrameBuffer) ClearDepth() {
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
}

// HasDepth reports whether the buffer carries a z-buffer.
func (fb *FrameBuffer) HasDepth() bool {
	return fb.ZBuf != nil
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// Set writes c at (x, y). Writes outside the buffer are dropped.
func (fb *FrameBuffer) Set(x, y int, c color.NRGBA) {
	if !fb.InBounds(x, y) {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = c.A
}

// At returns the color at (x, y), or the zero color outside the buffer.
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	if !fb.InBounds(x, y) {
		return color.NRGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.NRGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Depth returns the stored depth at (x, y), or -inf when there is none.
func (fb *FrameBuffer) Depth(x, y int) float64 {
	if fb.ZBuf == nil || !fb.InBounds(x, y) {
		return math.Inf(-1)
	}
	return fb.ZBuf[y*fb.Width+x]
}

// Image converts the buffer to an NRGBA image flipped vertically, so that
// screen-space y=0 becomes the bottom row of the picture.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	stride := fb.Width * 4
	for y := 0; y < fb.Height; y++ {
		src := fb.Color[y*stride : (y+1)*stride]
		dst := img.Pix[(fb.Height-1-y)*img.Stride:]
		copy(dst[:stride], src)
	}
	return img
}
