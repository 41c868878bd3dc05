package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_ColumnLength(t *testing.T) {
	t.Run("Standard profile matches the printed board", func(t *testing.T) {
		// Given: the lengths of the standard board from column 2 to 12
		expected := []int{3, 5, 7, 9, 11, 13, 11, 9, 7, 5, 3}

		// When: asking the profile for every column
		lengths := make([]int, 0, len(expected))
		for _, id := range ColumnIDs() {
			length, err := ProfileStandard.ColumnLength(id)
			require.NoError(t, err)
			lengths = append(lengths, length)
		}

		// Then: the lengths should match
		assert.Equal(t, expected, lengths)
	})

	t.Run("Lengths are symmetric around the middle column", func(t *testing.T) {
		for _, profile := range []Profile{ProfileStandard, ProfileShort} {
			for _, id := range ColumnIDs() {
				length, err := profile.ColumnLength(id)
				require.NoError(t, err)

				mirror, err := profile.ColumnLength(14 - id)
				require.NoError(t, err)

				assert.Equal(t, length, mirror, "profile %s column %d", profile, id)
			}
		}
	})

	t.Run("Standard lengths strictly decrease away from the middle", func(t *testing.T) {
		for id := MiddleColumn; id < LastColumn; id++ {
			// Given: a column and its outer neighbour
			inner, err := ProfileStandard.ColumnLength(id)
			require.NoError(t, err)

			outer, err := ProfileStandard.ColumnLength(id + 1)
			require.NoError(t, err)

			// Then: the outer column should be shorter
			assert.Greater(t, inner, outer, "column %d vs %d", id, id+1)
		}
	})

	t.Run("Short profile uses two spaces everywhere", func(t *testing.T) {
		for _, id := range ColumnIDs() {
			length, err := ProfileShort.ColumnLength(id)
			require.NoError(t, err)
			assert.Equal(t, 2, length)
		}
	})

	t.Run("Rejects columns outside 2..12", func(t *testing.T) {
		_, err := ProfileStandard.ColumnLength(1)
		require.ErrorIs(t, err, ErrInvalidColumn)

		_, err = ProfileStandard.ColumnLength(13)
		require.ErrorIs(t, err, ErrInvalidColumn)
	})

	t.Run("Rejects unknown profiles", func(t *testing.T) {
		_, err := Profile("marathon").ColumnLength(7)
		require.ErrorIs(t, err, ErrUnknownProfile)
	})
}

func TestParseProfile(t *testing.T) {
	t.Run("Known profiles", func(t *testing.T) {
		profile, err := ParseProfile("standard")
		require.NoError(t, err)
		assert.Equal(t, ProfileStandard, profile)
		assert.Equal(t, 3, profile.WinThreshold())

		profile, err = ParseProfile("short")
		require.NoError(t, err)
		assert.Equal(t, ProfileShort, profile)
		assert.Equal(t, 2, profile.WinThreshold())
	})

	t.Run("Unknown profile", func(t *testing.T) {
		_, err := ParseProfile("")
		require.ErrorIs(t, err, ErrUnknownProfile)
	})
}
