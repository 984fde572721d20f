// internal/defs/upgrades.go
package defs

// UpgradeDefinition holds the static data of a collectible upgrade.
type UpgradeDefinition struct {
	ID                string  `yaml:"id"`
	HealthIncrease    int     `yaml:"health_increase"`
	DropProbability   float64 `yaml:"drop_probability"`
	TTLSeconds        float64 `yaml:"ttl_seconds"`
	ExpirationSeconds float64 `yaml:"expiration_seconds"`
	ImageScale        float64 `yaml:"image_scale"`
}

const (
	SmallHealth = "small_health"
	MaxHealth   = "max_health"
)

// UpgradeDefs is the library of all upgrade definitions, mapped by their ID.
var UpgradeDefs = map[string]UpgradeDefinition{
	SmallHealth: {
		ID:                SmallHealth,
		HealthIncrease:    1,
		DropProbability:   0.5,
		TTLSeconds:        7,
		ExpirationSeconds: 3,
		ImageScale:        0.65,
	},
	MaxHealth: {
		ID:                MaxHealth,
		HealthIncrease:    10,
		DropProbability:   0.05,
		TTLSeconds:        4,
		ExpirationSeconds: 2,
		ImageScale:        0.75,
	},
}

// HealthDropTuning - kill-count thresholds between health drops.
type HealthDropTuning struct {
	WeakThreshold int `yaml:"weak_threshold"`
	MaxThreshold  int `yaml:"max_threshold"`
}

// HealthDrops is the active health drop tuning.
var HealthDrops = HealthDropTuning{WeakThreshold: 5, MaxThreshold: 20}
