package cantstop

import (
	"maps"
	"slices"

	"github.com/rocketscienceinc/cantstop/internal/entity"
)

// Progress describes a committed marker for display.
type Progress struct {
	Position   int  `json:"position"`
	Spaces     int  `json:"spaces"`
	IsTerminal bool `json:"is_terminal"`
}

// ActivePlayerProgress returns the active player's committed markers by
// column. ok is false when the player has none yet.
func (that *Board) ActivePlayerProgress() (map[entity.ColumnID]Progress, bool) {
	return that.progressOf(that.ActivePlayer())
}

func (that *Board) progressOf(player *entity.Player) (map[entity.ColumnID]Progress, bool) {
	progress := make(map[entity.ColumnID]Progress)
	for id, column := range that.columns {
		marker, ok := column.MarkerOf(player)
		if !ok {
			continue
		}

		progress[id] = Progress{
			Position:   marker.Space().Index(),
			Spaces:     column.SpaceCount(),
			IsTerminal: marker.Space().IsTerminal(),
		}
	}

	if len(progress) == 0 {
		return nil, false
	}

	return progress, true
}

// WhitePieceCompletedCols returns, ascending, the columns whose white piece
// sits on the terminal space: banking now would complete them.
func (that *Board) WhitePieceCompletedCols() []entity.ColumnID {
	var cols []entity.ColumnID
	for _, id := range slices.Sorted(maps.Keys(that.pool)) {
		piece, ok := that.pool[id].WhitePiece()
		if ok && piece.Space().IsTerminal() {
			cols = append(cols, id)
		}
	}

	return cols
}

// PoolColumns returns, ascending, the columns holding a white piece.
func (that *Board) PoolColumns() []entity.ColumnID {
	return slices.Sorted(maps.Keys(that.pool))
}
