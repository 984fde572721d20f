// internal/entity/indicator.go
package entity

import (
	"fmt"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/component"
	"hyperlydian/internal/config"
	"hyperlydian/internal/defs"
)

// Анимация предупреждающих полос
const (
	SideBarIterations = 3
	SideBarIncrement  = 0.25
)

var sideBarAlphas = []uint8{150, 150, 70, 0, 0}

// SideBar - мигающая предупреждающая полоса у края экрана.
type SideBar struct {
	Base
	Side      defs.Side
	flash     component.AlphaFlash
	callbacks []func()
}

// NewSideBar создает полосу у стороны side. Неизвестная сторона - ошибка.
func NewSideBar(w *World, side defs.Side, callbacks ...func()) (*SideBar, error) {
	b := &SideBar{
		Side:      side,
		flash:     component.AlphaFlash{Values: sideBarAlphas},
		callbacks: callbacks,
	}
	b.Base = newBase(w, KindIndicator, "indicator/warning/"+string(side), config.LayerIndicator, 1, 0, 0, 0)
	b.Render.Alpha = sideBarAlphas[0]
	b.special = true

	s := w.Screen
	bw, bh := float64(assets.WarningBarThickness), s.H-assets.WarningBarOffset
	if side == defs.SideTop || side == defs.SideBottom {
		bw, bh = s.W-assets.WarningBarOffset, assets.WarningBarThickness
	}
	switch side {
	case defs.SideLeft:
		b.Pos.X, b.Pos.Y = bw/2, s.H-bh/2
	case defs.SideTop:
		b.Pos.X, b.Pos.Y = bw/2, bh/2
	case defs.SideRight:
		b.Pos.X, b.Pos.Y = s.W-bw/2, bh/2
	case defs.SideBottom:
		b.Pos.X, b.Pos.Y = s.W-bw/2, s.H-bh/2
	default:
		return nil, fmt.Errorf("%w: side %q, available sides: %v", defs.ErrUnsupportedVariant, side, defs.AllSides)
	}
	w.Register(b)
	return b, nil
}

func (b *SideBar) Update(_ *UpdateContext) {
	b.Render.Alpha = b.flash.Advance(SideBarIncrement)
	if b.flash.Iteration > SideBarIterations {
		b.die()
	}
}

func (b *SideBar) die() {
	if !b.alive {
		return
	}
	defer b.Kill()
	for _, cb := range b.callbacks {
		cb()
	}
}
