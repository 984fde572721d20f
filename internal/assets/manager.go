// internal/assets/manager.go
package assets

import (
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"hyperlydian/internal/utils"
	"hyperlydian/pkg/sprite"
)

// Frame - готовое к отрисовке изображение (поворот + масштаб) и его маска.
// Маска всегда соответствует именно этому изображению.
type Frame struct {
	Key   string
	Image *image.RGBA
	Mask  *sprite.Mask
	W, H  float64
}

type frameKey struct {
	key   string
	deg   int
	scale float64
}

// Manager управляет загрузкой, генерацией и кэшированием изображений спрайтов.
type Manager struct {
	base    map[string]image.Image
	frames  map[frameKey]*Frame
	missing map[string]bool
}

// NewManager создает новый экземпляр Manager.
func NewManager() *Manager {
	return &Manager{
		base:    make(map[string]image.Image),
		frames:  make(map[frameKey]*Frame),
		missing: make(map[string]bool),
	}
}

// LoadDir загружает PNG-файлы из каталога; ключ - относительный путь без расширения.
// Загруженные файлы заменяют процедурные изображения. Битые файлы пропускаются.
func (m *Manager) LoadDir(dir string) int {
	loaded := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".png") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		key := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
		if m.loadSingleImage(key, path) {
			loaded++
		}
		return nil
	})
	if err != nil {
		log.Printf("WARNING: Failed to scan asset dir %s: %v", dir, err)
	}
	if loaded > 0 {
		m.frames = make(map[frameKey]*Frame)
	}
	log.Printf("Loaded %d sprite images from %s", loaded, dir)
	return loaded
}

// loadSingleImage безопасно загружает одно изображение.
func (m *Manager) loadSingleImage(key, path string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARNING: Decoder panicked while loading %s, skipping: %v", path, r)
			ok = false
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		log.Printf("WARNING: Failed to open image %s: %v", path, err)
		return false
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		log.Printf("WARNING: Failed to decode image %s: %v", path, err)
		return false
	}
	m.base[key] = img
	return true
}

// Base возвращает исходное (неповернутое) изображение по ключу.
func (m *Manager) Base(key string) image.Image {
	if img, ok := m.base[key]; ok {
		return img
	}
	img := generate(key)
	if img == nil {
		if !m.missing[key] {
			log.Printf("WARNING: No image for %q, using placeholder", key)
			m.missing[key] = true
		}
		img = placeholder()
	}
	m.base[key] = img
	return img
}

// Frame возвращает изображение, повернутое на rotation градусов и масштабированное.
// Поворот округляется до целого градуса, кадры кэшируются.
func (m *Manager) Frame(key string, rotation, scale float64) *Frame {
	if scale <= 0 {
		scale = 1
	}
	deg := int(math.Round(utils.NormalizeDegrees(rotation))) % 360
	fk := frameKey{key: key, deg: deg, scale: scale}
	if f, ok := m.frames[fk]; ok {
		return f
	}

	img := sprite.Transform(m.Base(key), float64(deg), scale)
	f := &Frame{
		Key:   key,
		Image: img,
		Mask:  sprite.MaskFromImage(img),
		W:     float64(img.Bounds().Dx()),
		H:     float64(img.Bounds().Dy()),
	}
	m.frames[fk] = f
	return f
}

// Cleanup сбрасывает кэш кадров.
func (m *Manager) Cleanup() {
	m.frames = make(map[frameKey]*Frame)
	log.Println("All sprite frames released.")
}

func placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	fill(img, color.RGBA{255, 0, 255, 255}, rectPts(0, 0, 16, 16)...)
	return img
}
