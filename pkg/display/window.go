// Package display presents rendered frames in a desktop window.
package display

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// Window is a pixel sink backed by an RGBA framebuffer. Pixels written
// before Show are presented once the window opens.
type Window struct {
	title string
	scale int

	mu    sync.Mutex
	fb    *image.RGBA
	dirty bool
}

// NewWindow creates a window framebuffer pre-filled with renderer.UnrenderedColor
func NewWindow(title string, width, height, scale int) *Window {
	if scale < 1 {
		scale = 1
	}
	fb := image.NewRGBA(image.Rect(0, 0, width, height))
	renderer.FillRGBA(fb, renderer.UnrenderedColor)
	return &Window{
		title: title,
		scale: scale,
		fb:    fb,
		dirty: true,
	}
}

// SetPixel implements renderer.PixelSink
func (w *Window) SetPixel(x, y int, c core.RGB) {
	w.mu.Lock()
	w.fb.SetRGBA(x, y, c.RGBA())
	w.dirty = true
	w.mu.Unlock()
}

// Image returns the framebuffer
func (w *Window) Image() *image.RGBA {
	return w.fb
}

// Show opens the window and blocks until it is closed
func (w *Window) Show() error {
	bounds := w.fb.Bounds()
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(bounds.Dx()*w.scale, bounds.Dy()*w.scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(&windowGame{w: w})
}

// windowGame adapts Window to ebiten.Game
type windowGame struct {
	w     *Window
	fbImg *ebiten.Image
}

func (g *windowGame) Update() error {
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	w := g.w
	w.mu.Lock()
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(w.fb.Bounds().Dx(), w.fb.Bounds().Dy())
		w.dirty = true
	}
	if w.dirty {
		g.fbImg.WritePixels(w.fb.Pix)
		w.dirty = false
	}
	w.mu.Unlock()

	screen.DrawImage(g.fbImg, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.fb.Bounds().Dx(), g.w.fb.Bounds().Dy()
}
