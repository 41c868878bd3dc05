// Package dice rolls the four Can't Stop dice and splits them into pairs of sums.
package dice

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

const (
	Count = 4
	Sides = 6
)

// ErrInvalidDie indicates a die value outside 1..Sides.
var ErrInvalidDie = errors.New("die value must be between 1 and 6")

// Source draws a uniform integer in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

// GlobalSource returns a Source backed by the math/rand generator.
func GlobalSource() Source {
	return globalSource{}
}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // game dice, not secrets
}

// Pair is one way to split the four dice: two sums, low sum first.
type Pair [2]int

// Dice holds the latest roll. Values are replaced wholesale on every roll.
type Dice struct {
	source Source
	values [Count]int
}

// New - creates dice drawing from source; nil falls back to math/rand.
func New(source Source) *Dice {
	if source == nil {
		source = GlobalSource()
	}

	return &Dice{source: source}
}

// Roll draws four dice and returns them sorted ascending.
func (that *Dice) Roll() [Count]int {
	var values [Count]int
	for i := range values {
		values[i] = that.source.IntN(Sides) + 1
	}
	slices.Sort(values[:])

	that.values = values

	return values
}

// Values returns the latest roll; zeroes before the first roll.
func (that *Dice) Values() [Count]int {
	return that.values
}

// DeriveSums - returns every distinct way to split the dice into two pairs,
// as (low, high) sums in ascending order. The result has one to three pairs.
func DeriveSums(values [Count]int) ([]Pair, error) {
	total := 0
	for _, value := range values {
		if value < 1 || value > Sides {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDie, value)
		}
		total += value
	}

	sorted := values
	slices.Sort(sorted[:])

	pairs := make([]Pair, 0, Count-1)
	for _, other := range sorted[1:] {
		sum := sorted[0] + other
		pair := Pair{sum, total - sum}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}

		if !slices.Contains(pairs, pair) {
			pairs = append(pairs, pair)
		}
	}

	slices.SortFunc(pairs, comparePairs)

	return pairs, nil
}

func comparePairs(a, b Pair) int {
	if a[0] != b[0] {
		return a[0] - b[0]
	}

	return a[1] - b[1]
}
