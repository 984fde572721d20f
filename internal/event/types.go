// internal/event/types.go
package event

import "hyperlydian/internal/types"

const (
	// Таймерные события спавна
	SpawnStraferGrunt EventType = "SpawnStraferGrunt"
	SpawnSpinnerGrunt EventType = "SpawnSpinnerGrunt"
	AddNote           EventType = "AddNote"
	AddStaff          EventType = "AddStaff"
	AddHazard         EventType = "AddHazard"

	PlayerDeath          EventType = "PlayerDeath"          // Игрок погиб
	EnemyKilled          EventType = "EnemyKilled"          // Враг уничтожен, Data: EnemyKilledData
	SpecialEventEnded    EventType = "SpecialEventEnded"    // Data: имя события
	FadeOutEventEntities EventType = "FadeOutEventEntities" // Убрать оставшиеся сущности события
	UpgradeCollected     EventType = "UpgradeCollected"     // Data: ID улучшения
)

// EnemyKilledData - данные события EnemyKilled
type EnemyKilledData struct {
	ID           types.EntityID
	DefID        string
	SpecialEvent bool
	X, Y         float64
}
