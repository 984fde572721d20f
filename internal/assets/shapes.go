// internal/assets/shapes.go
package assets

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/vector"

	"hyperlydian/internal/config"
	"hyperlydian/pkg/render"
)

// Ширина предупреждающей полосы и отступ от угла экрана
const (
	WarningBarThickness = 24
	WarningBarOffset    = 24
)

var (
	playerPalette  = render.NewPalette(config.PlayerColor, config.TextLightColor)
	straferPalette = render.NewPalette(config.StraferColor, config.EnemyShotColor)
	spinnerPalette = render.NewPalette(config.SpinnerColor, config.EnemyShotColor)
)

// generate строит процедурное изображение для ключа или возвращает nil.
// Все корабли нарисованы носом вправо (угол 0).
func generate(key string) image.Image {
	parts := strings.Split(key, "/")
	switch parts[0] {
	case "player":
		return ship(pick(playerPalette, parts), 32, 28)
	case "strafer_grunt":
		return ship(pick(straferPalette, parts), 32, 26)
	case "spinner_grunt":
		return spinner(pick(spinnerPalette, parts))
	case "projectile":
		return projectile(parts[1:])
	case "upgrade":
		if len(parts) > 1 && parts[1] == "max_health" {
			return cross(config.MaxHealthColor, 30)
		}
		return cross(config.HealthColor, 24)
	case "indicator":
		if len(parts) == 3 {
			return warningBar(parts[2])
		}
	case "background":
		if len(parts) > 1 && parts[1] == "staff" {
			return staff()
		}
		return note(config.DecorColor, variant(parts), 18)
	}
	return nil
}

func pick(p render.SpritePalette, parts []string) color.RGBA {
	if len(parts) > 1 && (parts[1] == "hit" || parts[1] == "heal") {
		return p.Hit
	}
	return p.Body
}

func variant(parts []string) int {
	n, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return n
}

func projectile(parts []string) image.Image {
	if len(parts) == 0 {
		return nil
	}
	last := parts[len(parts)-1]
	switch parts[0] {
	case "quarter_rest":
		img := image.NewRGBA(image.Rect(0, 0, 22, 10))
		fill(img, config.EnemyShotColor, pts(0, 5, 8, 0, 22, 5, 8, 10)...)
		return img
	case "music_note":
		col := config.ProjectileColor
		if len(parts) > 1 && parts[1] == "red" {
			col = config.WarningColor
		}
		return note(col, variant(parts), 20)
	case "music_letter", "blue_music_letter":
		return letter(config.HazardColor, variant(parts))
	case "accidental", "red_accidental":
		col := config.EnemyShotColor
		if parts[0] == "red_accidental" {
			col = config.WarningColor
		}
		return accidental(col, last)
	}
	return nil
}

func ship(col color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float32(w), float32(h)
	fill(img, col, pts(0, 0, fw, fh/2, 0, fh, fw/4, fh/2)...)
	fill(img, render.DarkenColor(col), pts(fw/4, fh/2-3, fw*0.6, fh/2-3, fw*0.6, fh/2+3, fw/4, fh/2+3)...)
	return img
}

func spinner(col color.RGBA) image.Image {
	const s = 34
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	fill(img, col, pts(s/2, 0, s, s/2, s/2, s, 0, s/2)...)
	fill(img, config.EnemyShotColor, pts(s/2, s/2-3, s, s/2-3, s, s/2+3, s/2, s/2+3)...)
	return img
}

func note(col color.RGBA, v, size int) image.Image {
	w := size + 2*(v%3)
	h := size + 6
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float32(w)/2-2, float32(h)-float32(size)/3
	fill(img, col, ellipse(cx, cy, float32(size)/3, float32(size)/4, 16)...)
	fill(img, col, rectPts(cx+float32(size)/3-2, 1, 3, cy)...)
	return img
}

func letter(col color.RGBA, v int) image.Image {
	const s = 26
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	// Несколько силуэтов букв A..G, выбираются по номеру варианта
	switch v % 4 {
	case 0:
		fill(img, col, pts(0, s, s/2, 0, s, s, s-6, s, s/2, 8, 6, s)...)
	case 1:
		fill(img, col, rectPts(2, 0, 7, s)...)
		fill(img, col, rectPts(2, 0, s-4, 6)...)
		fill(img, col, rectPts(2, s-6, s-4, 6)...)
	case 2:
		fill(img, col, rectPts(0, 0, s, 6)...)
		fill(img, col, rectPts(0, 0, 6, s)...)
		fill(img, col, rectPts(0, s-6, s, 6)...)
	default:
		fill(img, col, ellipse(s/2, s/2, s/2, s/2, 20)...)
	}
	return img
}

func accidental(col color.RGBA, name string) image.Image {
	const w, h = 16, 26
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	switch name {
	case "sharp":
		fill(img, col, rectPts(3, 0, 3, h)...)
		fill(img, col, rectPts(10, 0, 3, h)...)
		fill(img, col, pts(0, 8, w, 5, w, 9, 0, 12)...)
		fill(img, col, pts(0, 17, w, 14, w, 18, 0, 21)...)
	case "flat":
		fill(img, col, rectPts(2, 0, 3, h)...)
		fill(img, col, ellipse(7, h-7, 6, 6, 14)...)
	default:
		fill(img, col, rectPts(2, 0, 3, h-6)...)
		fill(img, col, rectPts(w-5, 6, 3, h-6)...)
		fill(img, col, pts(2, 8, w-2, 5, w-2, 10, 2, 13)...)
		fill(img, col, pts(2, 15, w-2, 12, w-2, 17, 2, 20)...)
	}
	return img
}

func cross(col color.RGBA, s int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	f := float32(s)
	fill(img, col, rectPts(f/3, 0, f/3, f)...)
	fill(img, col, rectPts(0, f/3, f, f/3)...)
	return img
}

func warningBar(side string) image.Image {
	w, h := config.ScreenWidth-WarningBarOffset, WarningBarThickness
	if side == "left" || side == "right" {
		w, h = WarningBarThickness, config.ScreenHeight-WarningBarOffset
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, config.WarningColor, rectPts(0, 0, float32(w), float32(h))...)
	return img
}

func staff() image.Image {
	const w, h = 240, 34
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < 5; i++ {
		fill(img, config.DecorColor, rectPts(0, float32(i*8), w, 2)...)
	}
	return img
}

// fill заливает многоугольник цветом поверх dst.
func fill(dst *image.RGBA, col color.Color, points ...[2]float32) {
	if len(points) < 3 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

func pts(xy ...float32) [][2]float32 {
	out := make([][2]float32, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, [2]float32{xy[i], xy[i+1]})
	}
	return out
}

func rectPts(x, y, w, h float32) [][2]float32 {
	return pts(x, y, x+w, y, x+w, y+h, x, y+h)
}

func ellipse(cx, cy, rx, ry float32, segments int) [][2]float32 {
	out := make([][2]float32, segments)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(segments)
		out[i] = [2]float32{cx + rx*float32(math.Cos(a)), cy + ry*float32(math.Sin(a))}
	}
	return out
}
