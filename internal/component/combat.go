package component

// Health - компонент здоровья. Value никогда не опускается ниже нуля.
type Health struct {
	Value int
	Max   int
}

// Damage уменьшает здоровье и возвращает true, если сущность только что умерла.
func (h *Health) Damage(amount int) bool {
	if h.Value <= 0 {
		return false
	}
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
	return h.Value == 0
}

// Heal восстанавливает здоровье, не превышая Max.
func (h *Health) Heal(amount int) {
	h.Value += amount
	if h.Max > 0 && h.Value > h.Max {
		h.Value = h.Max
	}
}

// Dead - здоровье исчерпано
func (h *Health) Dead() bool {
	return h.Value <= 0
}
