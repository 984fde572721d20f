// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Random - источник случайности, который системы получают извне.
// В тестах подменяется детерминированной реализацией.
type Random interface {
	// Intn возвращает число в [0, n).
	Intn(n int) int
	// IntRange возвращает число в [lo, hi] включительно.
	IntRange(lo, hi int) int
	// Float64 возвращает число в [0.0, 1.0).
	Float64() float64
	// Uniform возвращает число в [lo, hi).
	Uniform(lo, hi float64) float64
	// ChooseWeighted возвращает индекс, выбранный пропорционально весам.
	ChooseWeighted(weights []int) int
}

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

func (s *PRNGService) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

func (s *PRNGService) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// ChooseWeighted выполняет взвешенный случайный выбор.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	return PickWeighted(s, weights)
}

// PickWeighted - общая реализация взвешенного выбора поверх любого Random.
// Возвращает -1 для пустого списка.
func PickWeighted(r Random, weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		// Если сумма весов некорректна, возвращаем первый элемент по умолчанию
		return 0
	}

	roll := r.Intn(total)
	upto := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > roll {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}
