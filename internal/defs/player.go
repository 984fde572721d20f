// internal/defs/player.go
package defs

// WeaponDefinition describes a weapon loadout entry.
type WeaponDefinition struct {
	Projectile string
	Color      string
	Damage     int
	Speed      float64
	RateOfFire float64
	Muzzles    [][2]float64
	Scale      float64
	// Variant < 0 picks a random variant per shot.
	Variant   int
	TrackStat bool
}

// PlayerDefinition holds the player's base stats and loadout.
type PlayerDefinition struct {
	Health          int
	Speed           float64
	RotationAmount  float64
	InitialRotation float64
	ImageScale      float64
	SpawnOffsetY    float64
	Weapons         []WeaponDefinition
}

// Player is the active player definition.
var Player = PlayerDefinition{
	Health:          5,
	Speed:           5,
	RotationAmount:  2,
	InitialRotation: 90,
	ImageScale:      1.5,
	SpawnOffsetY:    100,
	Weapons: []WeaponDefinition{
		{
			Projectile: MusicNote,
			Color:      "blue",
			Damage:     10,
			Speed:      15,
			RateOfFire: 150,
			Muzzles:    [][2]float64{{0, 0}},
			Scale:      0.5,
			Variant:    -1,
			TrackStat:  true,
		},
		{
			Projectile: MusicNote,
			Color:      "red",
			Damage:     6,
			Speed:      12,
			RateOfFire: 300,
			Muzzles:    [][2]float64{{0, -18}, {0, 0}, {0, 18}},
			Scale:      0.4,
			Variant:    -1,
			TrackStat:  true,
		},
	},
}
