// pkg/render/color.go
package render

import "image/color"

// SpritePalette holds the fill colours of one procedural sprite family.
type SpritePalette struct {
	Body   color.RGBA
	Accent color.RGBA
	Hit    color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by f, keeping alpha.
func ScaleColor(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		x := float64(v) * f
		if x > 255 {
			x = 255
		}
		if x < 0 {
			x = 0
		}
		return uint8(x)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// WithAlpha returns c with its alpha replaced, premultiplying the colour channels.
func WithAlpha(c color.RGBA, alpha uint8) color.RGBA {
	if c.A == 0 {
		return color.RGBA{}
	}
	f := float64(alpha) / float64(c.A)
	out := ScaleColor(c, f)
	out.A = alpha
	return out
}

// NewPalette builds a palette whose hit colour is a whitened body colour.
func NewPalette(body, accent color.RGBA) SpritePalette {
	return SpritePalette{
		Body:   body,
		Accent: accent,
		Hit: color.RGBA{
			R: uint8((int(body.R) + 255) / 2),
			G: uint8((int(body.G) + 255) / 2),
			B: uint8((int(body.B) + 255) / 2),
			A: body.A,
		},
	}
}
