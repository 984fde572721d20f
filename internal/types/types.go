// internal/types/types.go
package types

import (
	"errors"
	"fmt"
)

// EntityID - стабильный идентификатор сущности в World
type EntityID uint64

// NoEntity - нулевой ID, никогда не выдаётся World
const NoEntity EntityID = 0

// PreconditionError - ошибка программиста (нарушено предусловие операции).
// Передаётся только через panic; игровой цикл отлавливает её и завершает партию.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violated in %s: %s", e.Op, e.Msg)
}

// Precondition паникует с *PreconditionError.
func Precondition(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// AsPrecondition достает *PreconditionError из значения recover(). Для остальных паник - nil.
func AsPrecondition(r any) *PreconditionError {
	err, ok := r.(error)
	if !ok {
		return nil
	}
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}
