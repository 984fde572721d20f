package component

// Enemy хранит учетные данные вражеской сущности.
type Enemy struct {
	DefID        string  // ID из defs.EnemyDefs
	Score        int     // очки за уничтожение
	SpecialEvent bool    // создан особым событием, а не обычным спавном
	SpawnTime    float64 // игровое время появления, мс
}
