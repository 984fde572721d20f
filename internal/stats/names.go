// internal/stats/names.go
package stats

// Имена статистик. Сегменты через "/" превращаются в OSC-адреса.
const (
	GameScore     = "game/score"
	GamePlayCount = "game/play_count"
	GameTime      = "game/time_ms"
	GameFrames    = "game/total_frames"
	GameSession   = "game/session"

	EnemiesTotal        = "enemies/total"
	EnemiesStandard     = "enemies/standard_count"
	EnemiesSpecial      = "enemies/special_count"
	EnemiesOnScreen     = "enemies/num_on_screen"
	EnemiesKilled       = "enemies/killed"
	EnemiesHit          = "enemies/hit"
	EnemiesHitDistance  = "enemies/hit_distance"
	EnemiesLifespan     = "enemies/lifespan_ms"
	PlayerBetweenKills  = "player/time_between_kills_ms"
	PlayerHealth        = "player/health"
	PlayerMaxHealth     = "player/max_health"
	PlayerHealthLost    = "player/health_lost"
	PlayerX             = "player/x"
	PlayerY             = "player/y"
	PlayerVerticalHalf  = "player/vertical_half"
	PlayerHitDistance   = "player/hit_distance"
	PlayerProjectileHit = "player/projectile_hit_count"
	PlayerDodges        = "player/dodges"
	PlayerNearEnemy     = "player/near_enemy"
	PlayerAccuracy      = "player/accuracy"
	WeaponSelected      = "weapon/selected"
	WeaponShots         = "weapon/shots_per_weapon"
	WeaponTotalShots    = "weapon/total_shots_fired"
	UpgradesDropped     = "upgrades/total_dropped"
	UpgradesCollected   = "upgrades/collected"
	UpgradesMissed      = "upgrades/missed"
	UpgradesLifespan    = "upgrades/lifespan_ms"
	EventsStarted       = "events/started"
	EventsInProgress    = "events/in_progress"
	ControlGameInit     = "control/game_init"
)

// Значения PlayerVerticalHalf
const (
	HalfTop    = 0
	HalfBottom = 1
)
