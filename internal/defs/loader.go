// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the YAML tuning file. Every section is optional and only the
// fields present in the file override the built-in values.
type tuningFile struct {
	Enemies       map[string]yaml.Node `yaml:"enemies"`
	Upgrades      map[string]yaml.Node `yaml:"upgrades"`
	Events        map[string]yaml.Node `yaml:"events"`
	StraferGroup  yaml.Node            `yaml:"strafer_group"`
	SpinnerGroup  yaml.Node            `yaml:"spinner_group"`
	HealthDrops   yaml.Node            `yaml:"health_drops"`
	EventSchedule yaml.Node            `yaml:"event_schedule"`
	Difficulty    yaml.Node            `yaml:"difficulty"`
}

// LoadTuning reads the tuning file and overlays it onto the definition tables.
func LoadTuning(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ApplyTuning(file)
}

// ApplyTuning overlays YAML tuning data onto the definition tables.
// Nothing is modified if the data is invalid.
func ApplyTuning(data []byte) error {
	var tf tuningFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("failed to unmarshal tuning: %w", err)
	}

	enemies := make(map[string]EnemyDefinition, len(EnemyDefs))
	for id, def := range EnemyDefs {
		enemies[id] = def
	}
	for id, node := range tf.Enemies {
		def, ok := enemies[id]
		if !ok {
			return fmt.Errorf("%w: enemy %q", ErrUnknownDefinition, id)
		}
		if err := node.Decode(&def); err != nil {
			return fmt.Errorf("failed to decode enemy %s: %w", id, err)
		}
		def.ID = id
		enemies[id] = def
	}

	upgrades := make(map[string]UpgradeDefinition, len(UpgradeDefs))
	for id, def := range UpgradeDefs {
		upgrades[id] = def
	}
	for id, node := range tf.Upgrades {
		def, ok := upgrades[id]
		if !ok {
			return fmt.Errorf("%w: upgrade %q", ErrUnknownDefinition, id)
		}
		if err := node.Decode(&def); err != nil {
			return fmt.Errorf("failed to decode upgrade %s: %w", id, err)
		}
		def.ID = id
		upgrades[id] = def
	}

	events := append([]SpecialEventDefinition(nil), SpecialEventDefs...)
	for id, node := range tf.Events {
		idx := -1
		for i := range events {
			if events[i].ID == id {
				idx = i
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: special event %q", ErrUnknownDefinition, id)
		}
		if err := node.Decode(&events[idx]); err != nil {
			return fmt.Errorf("failed to decode special event %s: %w", id, err)
		}
		events[idx].ID = id
	}

	strafer, spinner := StraferGroup, SpinnerGroup
	drops, schedule, difficulty := HealthDrops, EventSchedule, Difficulty
	sections := []struct {
		name string
		node *yaml.Node
		dst  any
	}{
		{"strafer_group", &tf.StraferGroup, &strafer},
		{"spinner_group", &tf.SpinnerGroup, &spinner},
		{"health_drops", &tf.HealthDrops, &drops},
		{"event_schedule", &tf.EventSchedule, &schedule},
		{"difficulty", &tf.Difficulty, &difficulty},
	}
	for _, s := range sections {
		if s.node.Kind == 0 {
			continue
		}
		if err := s.node.Decode(s.dst); err != nil {
			return fmt.Errorf("failed to decode %s: %w", s.name, err)
		}
	}

	EnemyDefs, UpgradeDefs, SpecialEventDefs = enemies, upgrades, events
	StraferGroup, SpinnerGroup = strafer, spinner
	HealthDrops, EventSchedule, Difficulty = drops, schedule, difficulty

	log.Printf("Loaded tuning: %d enemy, %d upgrade, %d event overrides", len(tf.Enemies), len(tf.Upgrades), len(tf.Events))
	return nil
}
