// internal/component/player.go
package component

// PlayerStateComponent хранит информацию, специфичную для игрока.
type PlayerStateComponent struct {
	WeaponIndex int
	Invincible  bool
	// Снаряды, которые пролетели рядом, но еще не попали
	InRange OverlapSet
	Dodges  int
}
