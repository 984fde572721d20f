// internal/defs/events.go
package defs

// SpecialEventDefinition describes one special event variant.
type SpecialEventDefinition struct {
	ID         string  `yaml:"id"`
	Weight     int     `yaml:"weight"`
	DurationMs float64 `yaml:"duration_ms,omitempty"`
}

const (
	SpinnerGruntSwarm  = "spinner_grunt_swarm"
	BulletBurst        = "bullet_burst"
	FallingHazardField = "falling_hazard_field"
)

// SpecialEventDefs lists the variants in a fixed order so weighted choice stays deterministic.
var SpecialEventDefs = []SpecialEventDefinition{
	{ID: SpinnerGruntSwarm, Weight: 3},
	{ID: BulletBurst, Weight: 2, DurationMs: 12000},
	{ID: FallingHazardField, Weight: 2, DurationMs: 15000},
}

// EventScheduleTuning - how many standard enemies spawn between special events.
type EventScheduleTuning struct {
	StandardEnemiesPerEvent int `yaml:"standard_enemies_per_event"`
	MinEnemiesPerEvent      int `yaml:"min_enemies_per_event"`
	MaxEnemiesPerEvent      int `yaml:"max_enemies_per_event"`
	EnemiesPerEventStep     int `yaml:"enemies_per_event_step"`
}

// EventSchedule is the active event schedule tuning.
var EventSchedule = EventScheduleTuning{
	StandardEnemiesPerEvent: 30,
	MinEnemiesPerEvent:      15,
	MaxEnemiesPerEvent:      60,
	EnemiesPerEventStep:     5,
}

// DifficultyTuning - base multipliers and increments of the two difficulty ratchets.
type DifficultyTuning struct {
	KillBase       int `yaml:"kill_base"`
	KillIncrement  int `yaml:"kill_increment"`
	EventBase      int `yaml:"event_base"`
	EventIncrement int `yaml:"event_increment"`
}

// Difficulty is the active difficulty tuning.
var Difficulty = DifficultyTuning{
	KillBase:       10,
	KillIncrement:  5,
	EventBase:      1,
	EventIncrement: 1,
}
