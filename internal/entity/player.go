package entity

import "slices"

// Player holds a player's identity and the columns it has claimed.
type Player struct {
	Name string

	completed []ColumnID
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// CompletedColumns returns the claimed columns in ascending order.
func (that *Player) CompletedColumns() []ColumnID {
	cols := slices.Clone(that.completed)
	slices.Sort(cols)

	return cols
}

func (that *Player) CompletedCount() int {
	return len(that.completed)
}

func (that *Player) HasCompleted(id ColumnID) bool {
	return slices.Contains(that.completed, id)
}

func (that *Player) recordCompleted(id ColumnID) {
	if that.HasCompleted(id) {
		return
	}

	that.completed = append(that.completed, id)
}
