// internal/entity/group.go
package entity

import "hyperlydian/internal/types"

// Group - упорядоченный набор живых сущностей одной категории.
// Хук удаления вызывается ровно один раз для каждого удаленного участника.
type Group struct {
	name     string
	members  []Entity
	index    map[types.EntityID]struct{}
	onRemove []func(Entity)
}

func NewGroup(name string) *Group {
	return &Group{name: name, index: make(map[types.EntityID]struct{})}
}

func (g *Group) Name() string { return g.name }

// OnRemove регистрирует хук, вызываемый при удалении участника.
func (g *Group) OnRemove(fn func(Entity)) {
	g.onRemove = append(g.onRemove, fn)
}

// Add добавляет живую сущность; повторное добавление игнорируется.
func (g *Group) Add(e Entity) bool {
	if !e.Alive() {
		return false
	}
	if _, ok := g.index[e.ID()]; ok {
		return false
	}
	g.index[e.ID()] = struct{}{}
	g.members = append(g.members, e)
	b := e.base()
	b.groups = append(b.groups, g)
	return true
}

func (g *Group) Has(id types.EntityID) bool {
	_, ok := g.index[id]
	return ok
}

func (g *Group) Len() int { return len(g.members) }

// Snapshot возвращает копию списка участников, безопасную для обхода,
// пока сущности добавляются и удаляются.
func (g *Group) Snapshot() []Entity {
	out := make([]Entity, len(g.members))
	copy(out, g.members)
	return out
}

// remove удаляет участника по ID и вызывает хуки.
func (g *Group) remove(id types.EntityID) {
	if _, ok := g.index[id]; !ok {
		return
	}
	delete(g.index, id)
	for i, m := range g.members {
		if m.ID() == id {
			g.members = append(g.members[:i:i], g.members[i+1:]...)
			for _, fn := range g.onRemove {
				fn(m)
			}
			return
		}
	}
}
