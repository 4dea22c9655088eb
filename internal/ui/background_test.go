package ui

import (
	"image/color"
	"testing"
)

func TestHSVToRGBPrimaries(t *testing.T) {
	tests := []struct {
		name     string
		h, s, v  float64
		expected color.RGBA
	}{
		{"red", 0, 1, 1, color.RGBA{255, 0, 0, 255}},
		{"green", 120, 1, 1, color.RGBA{0, 255, 0, 255}},
		{"blue", 240, 1, 1, color.RGBA{0, 0, 255, 255}},
		{"black", 0, 0, 0, color.RGBA{0, 0, 0, 255}},
		{"white", 0, 0, 1, color.RGBA{255, 255, 255, 255}},
		{"hue wraps", 360, 1, 1, color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hsvToRGB(tt.h, tt.s, tt.v); got != tt.expected {
				t.Errorf("hsvToRGB(%v, %v, %v) = %v, expected %v", tt.h, tt.s, tt.v, got, tt.expected)
			}
		})
	}
}

func TestHSVToRGBAlwaysOpaque(t *testing.T) {
	for h := 0.0; h < 360; h += 30 {
		if got := hsvToRGB(h, 0.7, 0.2); got.A != 255 {
			t.Errorf("hsvToRGB(%v, ...) alpha = %d, expected 255", h, got.A)
		}
	}
}
