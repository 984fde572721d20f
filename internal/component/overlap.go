// internal/component/overlap.go
package component

import "hyperlydian/internal/types"

// OverlapSet помнит партнеров по столкновению, которые уже обработаны.
// Партнер удаляется из набора, только когда прямоугольники перестают пересекаться.
type OverlapSet map[types.EntityID]struct{}

// Add возвращает false, если партнер уже был в наборе.
func (s *OverlapSet) Add(id types.EntityID) bool {
	if *s == nil {
		*s = make(OverlapSet)
	}
	if _, ok := (*s)[id]; ok {
		return false
	}
	(*s)[id] = struct{}{}
	return true
}

func (s OverlapSet) Has(id types.EntityID) bool {
	_, ok := s[id]
	return ok
}

func (s OverlapSet) Remove(id types.EntityID) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

// Prune удаляет всех партнеров, для которых keep вернул false.
func (s OverlapSet) Prune(keep func(id types.EntityID) bool) {
	for id := range s {
		if !keep(id) {
			delete(s, id)
		}
	}
}
