// internal/stats/tracker.go
package stats

import (
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"hyperlydian/internal/osc"
)

// Sink - приемник статистики. Ядро игры только пишет в него и никогда не читает ответ.
type Sink interface {
	Update(name string, value float64)
	Add(name string, delta float64)
	Increase(counter, key string)
}

// Nop - приемник, который все отбрасывает
type Nop struct{}

func (Nop) Update(string, float64) {}
func (Nop) Add(string, float64) {}
func (Nop) Increase(string, string) {}

// Tracker накапливает статистику прохождения и отправляет ее в аудио-приложение по OSC.
type Tracker struct {
	values   map[string]float64
	sums     map[string]float64
	counts   map[string]int
	counters map[string]map[string]int

	client    *osc.Client
	session   uuid.UUID
	playCount int
	startTime float64
	totalTime float64
}

// NewTracker создает трекер. client может быть nil - тогда статистика только копится.
func NewTracker(client *osc.Client) *Tracker {
	t := &Tracker{client: client}
	t.reset()
	return t
}

func (t *Tracker) reset() {
	t.values = make(map[string]float64)
	t.sums = make(map[string]float64)
	t.counts = make(map[string]int)
	t.counters = make(map[string]map[string]int)
}

func (t *Tracker) Update(name string, value float64) {
	t.values[name] = value
}

// Add прибавляет delta к сумме и считает количество добавлений для среднего.
func (t *Tracker) Add(name string, delta float64) {
	t.sums[name] += delta
	t.counts[name]++
}

func (t *Tracker) Increase(counter, key string) {
	m, ok := t.counters[counter]
	if !ok {
		m = make(map[string]int)
		t.counters[counter] = m
	}
	m[key]++
}

// Value возвращает последнее значение, записанное через Update.
func (t *Tracker) Value(name string) float64 { return t.values[name] }

// Sum возвращает сумму, накопленную через Add.
func (t *Tracker) Sum(name string) float64 { return t.sums[name] }

// Count возвращает число вызовов Add для имени.
func (t *Tracker) Count(name string) int { return t.counts[name] }

// Counter возвращает значение счетчика counter по ключу key.
func (t *Tracker) Counter(counter, key string) int { return t.counters[counter][key] }

// Session - идентификатор текущего прохождения
func (t *Tracker) Session() uuid.UUID { return t.session }

func (t *Tracker) PlayCount() int { return t.playCount }

// BeginPlaythrough сбрасывает статистику прохождения и выдает новый идентификатор сессии.
func (t *Tracker) BeginPlaythrough(nowMs float64, maxHealth int) {
	t.reset()
	t.playCount++
	t.session = uuid.New()
	t.startTime = nowMs
	t.values[GamePlayCount] = float64(t.playCount)
	t.values[PlayerMaxHealth] = float64(maxHealth)
	t.values[PlayerHealth] = float64(maxHealth)
	t.values[ControlGameInit] = 1
	log.Printf("Starting playthrough %d (session %s)", t.playCount, t.session)
}

// SetGameTime обновляет время текущего прохождения.
func (t *Tracker) SetGameTime(nowMs float64) {
	t.values[GameTime] = nowMs - t.startTime
}

// Accuracy - процент попаданий по врагам
func (t *Tracker) Accuracy() float64 {
	shots := t.sums[WeaponTotalShots]
	if shots <= 0 {
		return 0
	}
	return t.sums[EnemiesHit] / shots * 100
}

// Bundle собирает текущую статистику в OSC-пакет. Первым идет идентификатор сессии,
// остальные сообщения - в стабильном порядке.
func (t *Tracker) Bundle() *osc.Bundle {
	t.values[PlayerAccuracy] = t.Accuracy()

	msgs := []*osc.Message{osc.NewMessage(GameSession, t.session.String())}
	for _, name := range sortedKeys(t.values) {
		msgs = append(msgs, osc.NewMessage(name, float32(t.values[name])))
	}
	for _, name := range sortedKeys(t.sums) {
		msgs = append(msgs, osc.NewMessage(name, float32(t.sums[name])))
		if n := t.counts[name]; n > 0 {
			msgs = append(msgs, osc.NewMessage(name+"/average", float32(t.sums[name]/float64(n))))
		}
	}
	for _, counter := range sortedKeys(t.counters) {
		keys := t.counters[counter]
		for _, key := range sortedKeys(keys) {
			msgs = append(msgs, osc.NewMessage(counter+"/"+key, int32(keys[key])))
		}
	}
	return osc.NewBundle(msgs...)
}

// Flush отправляет статистику. Ошибки отправки не прерывают кадр.
func (t *Tracker) Flush() {
	if t.client == nil {
		return
	}
	t.client.Send(t.Bundle())
}

// EndPlaythrough пишет итог прохождения в лог и отправляет финальный пакет.
func (t *Tracker) EndPlaythrough(nowMs float64) {
	t.SetGameTime(nowMs)
	t.totalTime += t.values[GameTime]
	t.values[ControlGameInit] = 0
	log.Print(t.Summary())
	t.Flush()
}

// Summary - текстовый итог прохождения
func (t *Tracker) Summary() string {
	survived := int64(t.values[GameTime]) / 1000
	total := int64(t.totalTime) / 1000
	return fmt.Sprintf("---- Game %d ----\nScore: %.0f\nEnemies Killed: %.0f\nTotal Shots Fired: %.0f\n"+
		"Enemies Hit: %.0f\nPlayer Shot Accuracy: %.1f%%\nTime Survived: %dh %dm %ds\nTotal Time Played: %dh %dm %ds",
		t.playCount, t.sums[GameScore], t.sums[EnemiesKilled], t.sums[WeaponTotalShots], t.sums[EnemiesHit], t.Accuracy(),
		survived/3600, survived/60%60, survived%60, total/3600, total/60%60, total%60)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
