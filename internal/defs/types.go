// internal/defs/types.go
package defs

import "errors"

// ImageState is the visual state tag of a character sprite.
type ImageState string

const (
	ImageDefault ImageState = "default"
	ImageHit     ImageState = "hit"
	ImageHeal    ImageState = "heal"
)

// Side of the screen.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// AllSides lists the sides in drawing order.
var AllSides = []Side{SideLeft, SideRight, SideTop, SideBottom}

var (
	ErrUnsupportedColor   = errors.New("unsupported color")
	ErrUnsupportedVariant = errors.New("unsupported variant")
	ErrUnknownDefinition  = errors.New("unknown definition")
)
