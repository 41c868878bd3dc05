package entity

import (
	"errors"
	"fmt"
)

// ColumnID names a column by the dice sum that advances it.
type ColumnID int

const (
	FirstColumn  ColumnID = 2
	MiddleColumn ColumnID = 7
	LastColumn   ColumnID = 12
)

var (
	ErrInvalidColumn  = errors.New("invalid column id")
	ErrUnknownProfile = errors.New("unknown column profile")
)

// Valid reports whether id is one of the board's columns.
func (that ColumnID) Valid() bool {
	return that >= FirstColumn && that <= LastColumn
}

// ColumnIDs returns every column id in ascending order.
func ColumnIDs() []ColumnID {
	ids := make([]ColumnID, 0, LastColumn-FirstColumn+1)
	for id := FirstColumn; id <= LastColumn; id++ {
		ids = append(ids, id)
	}

	return ids
}

// Profile selects the column lengths and the default number of columns needed to win.
type Profile string

const (
	ProfileStandard Profile = "standard"
	ProfileShort    Profile = "short"
)

type profileShape struct {
	start        int
	step         int
	winThreshold int
}

var profiles = map[Profile]profileShape{
	ProfileStandard: {start: 3, step: 2, winThreshold: 3},
	ProfileShort:    {start: 2, step: 0, winThreshold: 2},
}

// ParseProfile - converts a configuration value into a Profile.
func ParseProfile(value string) (Profile, error) {
	profile := Profile(value)
	if _, ok := profiles[profile]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, value)
	}

	return profile, nil
}

// ColumnLength - returns the index of the terminal space of the column.
// Lengths are symmetric around the middle column.
func (that Profile) ColumnLength(id ColumnID) (int, error) {
	shape, ok := profiles[that]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProfile, string(that))
	}

	if !id.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumn, id)
	}

	distance := int(id - MiddleColumn)
	if distance < 0 {
		distance = -distance
	}

	steps := int(MiddleColumn-FirstColumn) - distance

	return shape.start + steps*shape.step, nil
}

// WinThreshold - returns how many completed columns win a game by default.
func (that Profile) WinThreshold() int {
	return profiles[that].winThreshold
}
