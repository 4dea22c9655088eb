package ui

import (
	"context"
	"image/color"
	"math"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Background is the slowly hue-cycling gradient behind the deck, in the
// spirit of a gaming keyboard. AccentColor exposes the current hue so the
// window can tint controls in sync.
type Background struct {
	gradient *canvas.LinearGradient

	mu  sync.Mutex
	hue float64

	// OnAccent, when set, receives the accent color of every frame.
	OnAccent func(color.RGBA)
}

// NewBackground creates the gradient at hue zero.
func NewBackground() *Background {
	b := &Background{}
	b.gradient = canvas.NewLinearGradient(hsvToRGB(0, 0.7, 0.20), hsvToRGB(120, 0.8, 0.22), 45)
	return b
}

// Object returns the renderable gradient.
func (b *Background) Object() fyne.CanvasObject {
	return b.gradient
}

// AccentColor returns a bright variant of the current hue.
func (b *Background) AccentColor() color.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return hsvToRGB(b.hue, 0.65, 0.95)
}

// Animate cycles the hue until the context is cancelled.
func (b *Background) Animate(ctx context.Context) {
	ticker := time.NewTicker(BackgroundFrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		b.mu.Lock()
		b.hue = math.Mod(b.hue+BackgroundHueStep, 360)
		start := hsvToRGB(b.hue, 0.7, 0.20)
		end := hsvToRGB(math.Mod(b.hue+120, 360), 0.8, 0.22)
		accent := hsvToRGB(b.hue, 0.65, 0.95)
		b.mu.Unlock()

		fyne.Do(func() {
			b.gradient.StartColor = start
			b.gradient.EndColor = end
			b.gradient.Refresh()
			if b.OnAccent != nil {
				b.OnAccent(accent)
			}
		})
	}
}

// hsvToRGB converts hue [0,360), saturation and value [0,1] to RGBA.
func hsvToRGB(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}
