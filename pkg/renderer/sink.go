package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// PixelSink receives finished pixels. The renderer never reads from it.
type PixelSink interface {
	SetPixel(x, y int, c core.RGB)
}

// UnrenderedColor fills fresh images so pixels nobody wrote stand out
var UnrenderedColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// ImageSink writes pixels into an RGBA image, wrapping channels to 8 bits
type ImageSink struct {
	img *image.RGBA
}

// NewImageSink creates an image sink pre-filled with UnrenderedColor
func NewImageSink(width, height int) *ImageSink {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	FillRGBA(img, UnrenderedColor)
	return &ImageSink{img: img}
}

// SetPixel implements PixelSink
func (s *ImageSink) SetPixel(x, y int, c core.RGB) {
	s.img.SetRGBA(x, y, c.RGBA())
}

// Image returns the underlying image
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// FillRGBA sets every pixel of img to c
func FillRGBA(img *image.RGBA, c color.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// FrameBuffer holds full-precision pixels in row-major order
type FrameBuffer struct {
	Width, Height int
	Pixels        []core.RGB
}

// NewFrameBuffer creates a zeroed frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.RGB, width*height),
	}
}

// SetPixel implements PixelSink
func (fb *FrameBuffer) SetPixel(x, y int, c core.RGB) {
	fb.Pixels[y*fb.Width+x] = c
}

// At returns the pixel at (x, y)
func (fb *FrameBuffer) At(x, y int) core.RGB {
	return fb.Pixels[y*fb.Width+x]
}

// Row returns the pixels of one scanline
func (fb *FrameBuffer) Row(y int) []core.RGB {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// Flush emits every pixel to sink in raster order
func (fb *FrameBuffer) Flush(sink PixelSink) {
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			sink.SetPixel(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
}
