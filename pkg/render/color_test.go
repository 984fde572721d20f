package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	expected := color.RGBA{100, 50, 25, 255}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name     string
		in       color.RGBA
		alpha    uint8
		expected color.RGBA
	}{
		{"Half", color.RGBA{200, 100, 0, 255}, 51, color.RGBA{40, 20, 0, 51}},
		{"Opaque", color.RGBA{10, 20, 30, 255}, 255, color.RGBA{10, 20, 30, 255}},
		{"Transparent source", color.RGBA{}, 100, color.RGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithAlpha(tt.in, tt.alpha); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewPaletteHitIsLighter(t *testing.T) {
	p := NewPalette(color.RGBA{100, 0, 0, 255}, color.RGBA{0, 0, 0, 255})
	if p.Hit.R <= p.Body.R || p.Hit.G == 0 {
		t.Errorf("Expected a lighter hit colour, got %v", p.Hit)
	}
}
