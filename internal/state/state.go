// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"hyperlydian/internal/assets"
	"hyperlydian/internal/config"
	"hyperlydian/internal/osc"
	"hyperlydian/internal/stats"
)

// State - интерфейс для всех состояний. Update возвращает ebiten.Termination для выхода.
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// Context - зависимости, общие для всех состояний
type Context struct {
	Settings     config.Settings
	SettingsPath string
	Assets       *assets.Manager
	Tracker      *stats.Tracker // nil, если статистика отключена
	Link         *osc.AudioLink
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
	Ctx     *Context
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{Ctx: ctx}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current - активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
