// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID                   string  `yaml:"id"`
	Health               int     `yaml:"health"`
	SpawnSpeed           float64 `yaml:"spawn_speed"`
	Score                int     `yaml:"score"`
	ProjectileSpawnDelta float64 `yaml:"projectile_spawn_delta"`
	InitialRotation      float64 `yaml:"initial_rotation"`
	ImageScale           float64 `yaml:"image_scale"`
	// StrafeSpeed is used by strafers, RotationAmount by spinners.
	StrafeSpeed    float64 `yaml:"strafe_speed,omitempty"`
	RotationAmount float64 `yaml:"rotation_amount,omitempty"`
}

const (
	StraferGrunt = "strafer_grunt"
	SpinnerGrunt = "spinner_grunt"
)

// EnemyDefs is the library of all enemy definitions, mapped by their ID.
var EnemyDefs = map[string]EnemyDefinition{
	StraferGrunt: {
		ID:                   StraferGrunt,
		Health:               20,
		SpawnSpeed:           8,
		Score:                10,
		ProjectileSpawnDelta: 40,
		InitialRotation:      270,
		ImageScale:           1.5,
		StrafeSpeed:          3,
	},
	SpinnerGrunt: {
		ID:                   SpinnerGrunt,
		Health:               30,
		SpawnSpeed:           6,
		Score:                25,
		ProjectileSpawnDelta: 50,
		InitialRotation:      0,
		ImageScale:           1.5,
		RotationAmount:       1,
	},
}

// StraferGroupTuning holds the row layout and difficulty bounds of strafer spawning.
type StraferGroupTuning struct {
	MaxRows             int     `yaml:"max_rows"`
	MaxGruntsPerRow     int     `yaml:"max_grunts_per_row"`
	MinGruntsPerRow     int     `yaml:"min_grunts_per_row"`
	InitialGruntsPerRow int     `yaml:"initial_grunts_per_row"`
	InitialRows         int     `yaml:"initial_rows"`
	EasyModeRows        int     `yaml:"easy_mode_rows"`
	RowStart            float64 `yaml:"row_start"`
	RowSpacing          float64 `yaml:"row_spacing"`
	HealthIncrement     int     `yaml:"health_increment"`
	MinHealth           int     `yaml:"min_health"`
	InitialTimer        int     `yaml:"initial_timer"`
	MinTimer            int     `yaml:"min_timer"`
	MaxTimer            int     `yaml:"max_timer"`
	TimerIncrement      int     `yaml:"timer_increment"`
	// Weapon
	MinRateOfFire     int `yaml:"min_rate_of_fire"`
	MaxRateOfFire     int `yaml:"max_rate_of_fire"`
	EasyMinRateOfFire int `yaml:"easy_min_rate_of_fire"`
	EasyMaxRateOfFire int `yaml:"easy_max_rate_of_fire"`
	MinShotSpeed      int `yaml:"min_shot_speed"`
	MaxShotSpeed      int `yaml:"max_shot_speed"`
	// Strafe direction re-roll window, frames.
	MinStrafeFrames int `yaml:"min_strafe_frames"`
	MaxStrafeFrames int `yaml:"max_strafe_frames"`
}

// SpinnerGroupTuning holds the spinner spawn limits and swarm formation sizes.
type SpinnerGroupTuning struct {
	InitialMaxGrunts      int `yaml:"initial_max_grunts"`
	MaxGrunts             int `yaml:"max_grunts"`
	EasyModeGrunts        int `yaml:"easy_mode_grunts"`
	MinEllipseGrunts      int `yaml:"min_ellipse_grunts"`
	MaxEllipseGrunts      int `yaml:"max_ellipse_grunts"`
	InitialEllipseGrunts  int `yaml:"initial_ellipse_grunts"`
	EasyModeEllipseGrunts int `yaml:"easy_mode_ellipse_grunts"`
	HealthIncrement       int `yaml:"health_increment"`
	MinHealth             int `yaml:"min_health"`
	InitialTimer          int `yaml:"initial_timer"`
	MinTimer              int `yaml:"min_timer"`
	MaxTimer              int `yaml:"max_timer"`
	TimerIncrement        int `yaml:"timer_increment"`
	RateOfFire            int `yaml:"rate_of_fire"`
	EasyRateOfFire        int `yaml:"easy_rate_of_fire"`
	ShotSpeed             int `yaml:"shot_speed"`
	OffscreenAmount       int `yaml:"offscreen_amount"`
	ScreenBuffer          int `yaml:"screen_buffer"`
	MinTravel             int `yaml:"min_travel"`
	MaxTravel             int `yaml:"max_travel"`
	SpawnAttempts         int `yaml:"spawn_attempts"`
}

// StraferGroup is the active strafer tuning.
var StraferGroup = StraferGroupTuning{
	MaxRows:             4,
	MaxGruntsPerRow:     6,
	MinGruntsPerRow:     2,
	InitialGruntsPerRow: 3,
	InitialRows:         2,
	EasyModeRows:        1,
	RowStart:            150,
	RowSpacing:          1.25,
	HealthIncrement:     5,
	MinHealth:           10,
	InitialTimer:        2000,
	MinTimer:            500,
	MaxTimer:            2500,
	TimerIncrement:      250,
	MinRateOfFire:       500,
	MaxRateOfFire:       2000,
	EasyMinRateOfFire:   1000,
	EasyMaxRateOfFire:   2500,
	MinShotSpeed:        4,
	MaxShotSpeed:        7,
	MinStrafeFrames:     60,
	MaxStrafeFrames:     600,
}

// SpinnerGroup is the active spinner tuning.
var SpinnerGroup = SpinnerGroupTuning{
	InitialMaxGrunts:      2,
	MaxGrunts:             5,
	EasyModeGrunts:        1,
	MinEllipseGrunts:      2,
	MaxEllipseGrunts:      7,
	InitialEllipseGrunts:  3,
	EasyModeEllipseGrunts: 2,
	HealthIncrement:       3,
	MinHealth:             20,
	InitialTimer:          10000,
	MinTimer:              3000,
	MaxTimer:              15000,
	TimerIncrement:        1000,
	RateOfFire:            300,
	EasyRateOfFire:        600,
	ShotSpeed:             4,
	OffscreenAmount:       100,
	ScreenBuffer:          75,
	MinTravel:             300,
	MaxTravel:             600,
	SpawnAttempts:         100,
}
