package entity

import (
	"fmt"

	"github.com/rocketscienceinc/cantstop/internal/apperror"
)

// Space is a position within a column.
type Space struct {
	index    int
	terminal bool
}

func (that Space) Index() int {
	return that.index
}

func (that Space) IsTerminal() bool {
	return that.terminal
}

// Piece is the read-only view shared by committed markers and white pieces.
type Piece interface {
	Owner() *Player
	Space() Space
}

var (
	_ Piece = (*Marker)(nil)
	_ Piece = (*WhitePiece)(nil)
)

// Marker is a player's permanent progress in one column. It only moves forward.
type Marker struct {
	owner *Player
	space Space
}

func (that *Marker) Owner() *Player {
	return that.owner
}

func (that *Marker) Space() Space {
	return that.space
}

func (that *Marker) moveTo(space Space) error {
	if space.index < that.space.index {
		return fmt.Errorf("%w: from %d to %d", apperror.ErrMarkerBackward, that.space.index, space.index)
	}

	that.space = space

	return nil
}

// WhitePiece is the active player's progress in one column for the current turn.
type WhitePiece struct {
	owner *Player
	space Space
}

func (that *WhitePiece) Owner() *Player {
	return that.owner
}

func (that *WhitePiece) Space() Space {
	return that.space
}
