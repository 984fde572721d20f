// internal/defs/projectiles.go
package defs

import (
	"fmt"
	"slices"
)

// ProjectileKind holds the static data for one projectile family.
type ProjectileKind struct {
	ID            string
	DefaultDamage int
	DefaultSpeed  float64
	DefaultAngle  float64
	// Colors is the allowed color set; Color is the chosen one ("" when the kind has no colors).
	Colors []string
	Color  string
	// Variants names the variants when they matter for statistics; otherwise only NumVariants is used.
	Variants    []string
	NumVariants int
}

const (
	QuarterRest     = "quarter_rest"
	MusicNote       = "music_note"
	MusicLetter     = "music_letter"
	BlueMusicLetter = "blue_music_letter"
	Accidental      = "accidental"
	RedAccidental   = "red_accidental"
)

// ProjectileKinds is the library of all projectile kinds, mapped by their ID.
var ProjectileKinds = map[string]ProjectileKind{
	QuarterRest: {ID: QuarterRest, DefaultDamage: 5, DefaultSpeed: 10, DefaultAngle: 180, NumVariants: 1},
	MusicNote: {
		ID: MusicNote, DefaultDamage: 1, DefaultSpeed: 1, DefaultAngle: 180,
		Colors: []string{"blue", "red"}, NumVariants: 6,
	},
	MusicLetter: {
		ID: MusicLetter, DefaultDamage: 5, DefaultSpeed: 1, DefaultAngle: 180,
		Colors: []string{"blue"}, NumVariants: 4,
	},
	BlueMusicLetter: {
		ID: BlueMusicLetter, DefaultDamage: 5, DefaultSpeed: 1, DefaultAngle: 180,
		Colors: []string{"blue"}, Color: "blue", NumVariants: 10,
	},
	Accidental: {
		ID: Accidental, DefaultDamage: 5, DefaultSpeed: 8,
		Variants: []string{"natural", "sharp", "flat"}, NumVariants: 3,
	},
	RedAccidental: {
		ID: RedAccidental, DefaultDamage: 1, DefaultSpeed: 1,
		Variants: []string{"sharp", "flat"}, NumVariants: 2,
	},
}

// LookupProjectile returns a kind by ID, optionally recolored.
func LookupProjectile(id, color string) (ProjectileKind, error) {
	kind, ok := ProjectileKinds[id]
	if !ok {
		return ProjectileKind{}, fmt.Errorf("%w: projectile %q", ErrUnknownDefinition, id)
	}
	if color != "" {
		kind.Color = color
	}
	if err := kind.Validate(0); err != nil {
		return ProjectileKind{}, err
	}
	return kind, nil
}

// Validate checks the chosen color and a variant number against the allowed sets.
func (k ProjectileKind) Validate(variant int) error {
	if k.Color != "" && !slices.Contains(k.Colors, k.Color) {
		return fmt.Errorf("%w: %q for projectile %s, available colors: %v", ErrUnsupportedColor, k.Color, k.ID, k.Colors)
	}
	if variant < 0 || variant >= max(k.NumVariants, 1) {
		return fmt.Errorf("%w: %d for projectile %s, available variants: 0..%d", ErrUnsupportedVariant, variant, k.ID, max(k.NumVariants, 1)-1)
	}
	return nil
}

// VariantName returns the named variant or "" for kinds without names.
func (k ProjectileKind) VariantName(variant int) string {
	if variant < 0 || variant >= len(k.Variants) {
		return ""
	}
	return k.Variants[variant]
}

// ImageKey is the asset key of one variant.
func (k ProjectileKind) ImageKey(variant int) string {
	if name := k.VariantName(variant); name != "" {
		return fmt.Sprintf("projectile/%s/%s", k.ID, name)
	}
	if k.Color != "" {
		return fmt.Sprintf("projectile/%s/%s/%d", k.ID, k.Color, variant)
	}
	return fmt.Sprintf("projectile/%s/%d", k.ID, variant)
}
