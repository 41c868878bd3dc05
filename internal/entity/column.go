package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/cantstop/internal/apperror"
)

var (
	ErrColumnCompleted = errors.New("column is already completed")
	ErrInvalidLength   = errors.New("column length must be positive")
)

// Column is one track of the board: its spaces, every player's committed
// marker and at most one white piece.
type Column struct {
	id          ColumnID
	spaces      []Space
	markers     []*Marker
	whitePiece  *WhitePiece
	completedBy *Player
}

// NewColumn - builds a column whose terminal space sits at index length.
func NewColumn(id ColumnID, length int) (*Column, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColumn, id)
	}

	if length <= 0 {
		return nil, fmt.Errorf("%w: column %d, length %d", ErrInvalidLength, id, length)
	}

	spaces := make([]Space, length+1)
	for i := range spaces {
		spaces[i] = Space{index: i}
	}
	spaces[length].terminal = true

	return &Column{
		id:     id,
		spaces: spaces,
	}, nil
}

func (that *Column) ID() ColumnID {
	return that.id
}

// Length returns the index of the terminal space.
func (that *Column) Length() int {
	return len(that.spaces) - 1
}

// SpaceCount returns the number of spaces, the start space included.
func (that *Column) SpaceCount() int {
	return len(that.spaces)
}

func (that *Column) Terminal() Space {
	return that.spaces[len(that.spaces)-1]
}

// Playable reports whether the column still accepts white pieces.
func (that *Column) Playable() bool {
	return that.completedBy == nil
}

func (that *Column) CompletedBy() (*Player, bool) {
	return that.completedBy, that.completedBy != nil
}

func (that *Column) WhitePiece() (*WhitePiece, bool) {
	return that.whitePiece, that.whitePiece != nil
}

func (that *Column) HasWhitePiece() bool {
	return that.whitePiece != nil
}

// MarkerOf returns the committed marker of player, if it has one here.
func (that *Column) MarkerOf(player *Player) (*Marker, bool) {
	for _, marker := range that.markers {
		if marker.owner == player {
			return marker, true
		}
	}

	return nil, false
}

// Markers returns the committed markers in the order they were first placed.
func (that *Column) Markers() []Piece {
	pieces := make([]Piece, 0, len(that.markers))
	for _, marker := range that.markers {
		pieces = append(pieces, marker)
	}

	return pieces
}

// PlaceOrAdvance - puts player's white piece one space ahead of its committed
// marker (or of the start space), or moves an existing white piece one space.
// A white piece on the terminal space stays where it is.
func (that *Column) PlaceOrAdvance(player *Player) error {
	if !that.Playable() {
		return fmt.Errorf("%w: %d", ErrColumnCompleted, that.id)
	}

	if that.whitePiece == nil {
		start := that.spaces[0]
		if marker, ok := that.MarkerOf(player); ok {
			start = marker.space
		}

		that.whitePiece = &WhitePiece{owner: player, space: start}
	} else if that.whitePiece.owner != player {
		return fmt.Errorf("%w: column %d", apperror.ErrForeignWhitePiece, that.id)
	}

	that.advanceWhitePiece()

	return nil
}

func (that *Column) advanceWhitePiece() {
	if that.whitePiece.space.terminal {
		return
	}

	that.whitePiece.space = that.spaces[that.whitePiece.space.index+1]
}

// Commit - turns the white piece into the owner's committed marker and
// removes it. Reaching the terminal space completes the column for the owner.
func (that *Column) Commit() (bool, error) {
	if that.whitePiece == nil {
		return false, nil
	}

	if !that.Playable() {
		return false, fmt.Errorf("%w: %d", ErrColumnCompleted, that.id)
	}

	piece := that.whitePiece

	marker, ok := that.MarkerOf(piece.owner)
	if ok {
		if err := marker.moveTo(piece.space); err != nil {
			return false, fmt.Errorf("failed to commit column %d: %w", that.id, err)
		}
	} else {
		marker = &Marker{owner: piece.owner, space: piece.space}
		that.markers = append(that.markers, marker)
	}

	that.whitePiece = nil

	if !marker.space.terminal {
		return false, nil
	}

	that.completedBy = marker.owner
	marker.owner.recordCompleted(that.id)

	return true, nil
}

// DiscardWhitePiece drops the white piece without touching committed markers.
func (that *Column) DiscardWhitePiece() {
	that.whitePiece = nil
}
