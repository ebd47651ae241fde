package raster

import "image"

// RGB is one 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// FrameStore holds the rendering target as flat slices for cache locality.
// Both buffers are row-major, indexed by x + y*Width.
type FrameStore struct {
	Width  int
	Height int
	Color  []uint8   // RGB interleaved, len = W*H*3, starts black
	Depth  []float64 // inverse depth per pixel, len = W*H, starts at 0 (empty)
}

// NewFrameStore allocates a black color buffer and a zeroed depth buffer.
func NewFrameStore(w, h int) *FrameStore {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	return &FrameStore{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*3),
		Depth:  make([]float64, n),
	}
}

// At returns the color stored at (x, y).
func (fb *FrameStore) At(x, y int) RGB {
	i := (x + y*fb.Width) * 3
	return RGB{fb.Color[i], fb.Color[i+1], fb.Color[i+2]}
}

// DepthAt returns the inverse depth stored at (x, y).
func (fb *FrameStore) DepthAt(x, y int) float64 {
	return fb.Depth[x+y*fb.Width]
}

func (fb *FrameStore) set(i int, c RGB) {
	p := i * 3
	fb.Color[p] = c.R
	fb.Color[p+1] = c.G
	fb.Color[p+2] = c.B
}

// Image converts the color buffer to an opaque NRGBA image for the sinks.
func (fb *FrameStore) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	n := fb.Width * fb.Height
	for i := 0; i < n; i++ {
		copy(img.Pix[i*4:i*4+3], fb.Color[i*3:i*3+3])
		img.Pix[i*4+3] = 255
	}
	return img
}
