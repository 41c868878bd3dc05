package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	draws []int
}

func (that *fixedSource) IntN(_ int) int {
	draw := that.draws[0]
	that.draws = that.draws[1:]

	return draw
}

func TestDeriveSums(t *testing.T) {
	t.Run("Four ones collapse into a single pair", func(t *testing.T) {
		// When: splitting [1,1,1,1]
		pairs, err := DeriveSums([Count]int{1, 1, 1, 1})

		// Then: only (2,2) remains
		require.NoError(t, err)
		assert.Equal(t, []Pair{{2, 2}}, pairs)
	})

	t.Run("Distinct dice give three pairs", func(t *testing.T) {
		// When: splitting [1,2,3,6]
		pairs, err := DeriveSums([Count]int{1, 2, 3, 6})

		// Then: three distinct pairs in ascending order
		require.NoError(t, err)
		assert.Equal(t, []Pair{{3, 9}, {4, 8}, {5, 7}}, pairs)
	})

	t.Run("Input order does not matter", func(t *testing.T) {
		sorted, err := DeriveSums([Count]int{1, 2, 3, 6})
		require.NoError(t, err)

		shuffled, err := DeriveSums([Count]int{6, 3, 1, 2})
		require.NoError(t, err)

		assert.Equal(t, sorted, shuffled)
	})

	t.Run("Every roll gives one to three pairs summing to the total", func(t *testing.T) {
		for a := 1; a <= Sides; a++ {
			for b := a; b <= Sides; b++ {
				for c := b; c <= Sides; c++ {
					for d := c; d <= Sides; d++ {
						values := [Count]int{a, b, c, d}
						total := a + b + c + d

						pairs, err := DeriveSums(values)
						require.NoError(t, err)
						require.NotEmpty(t, pairs, "dice %v", values)
						require.LessOrEqual(t, len(pairs), 3, "dice %v", values)

						for i, pair := range pairs {
							assert.Equal(t, total, pair[0]+pair[1], "dice %v", values)
							assert.LessOrEqual(t, pair[0], pair[1], "dice %v", values)

							if i > 0 {
								assert.Negative(t, comparePairs(pairs[i-1], pair), "dice %v not sorted and distinct", values)
							}
						}
					}
				}
			}
		}
	})

	t.Run("Rejects values outside a die", func(t *testing.T) {
		_, err := DeriveSums([Count]int{0, 1, 2, 3})
		require.ErrorIs(t, err, ErrInvalidDie)

		_, err = DeriveSums([Count]int{1, 2, 3, 7})
		require.ErrorIs(t, err, ErrInvalidDie)
	})
}

func TestDice_Roll(t *testing.T) {
	t.Run("Sorts the drawn faces", func(t *testing.T) {
		// Given: a source drawing faces 6, 2, 5, 1
		dice := New(&fixedSource{draws: []int{5, 1, 4, 0}})

		// When: rolling
		values := dice.Roll()

		// Then: faces come back ascending and are kept as the latest roll
		assert.Equal(t, [Count]int{1, 2, 5, 6}, values)
		assert.Equal(t, values, dice.Values())
	})

	t.Run("Default source stays within a die", func(t *testing.T) {
		dice := New(nil)

		for range 200 {
			for _, value := range dice.Roll() {
				require.GreaterOrEqual(t, value, 1)
				require.LessOrEqual(t, value, Sides)
			}
		}
	})
}
