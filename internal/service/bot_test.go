package service_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cantstop/internal/cantstop"
	"github.com/rocketscienceinc/cantstop/internal/config"
	"github.com/rocketscienceinc/cantstop/internal/entity"
	"github.com/rocketscienceinc/cantstop/internal/service"
	"github.com/rocketscienceinc/cantstop/testing/suite"
)

// zeroSource always picks the first option and always stops.
type zeroSource struct{}

func (zeroSource) IntN(_ int) int {
	return 0
}

func TestBotService_PlayTurn(t *testing.T) {
	t.Run("Banks a white piece on a terminal space", func(t *testing.T) {
		// Given: a short game where the first roll is four ones
		dice := suite.NewScriptedDice(t, 1, 1, 1, 1)
		ctx, st := suite.New(t, config.Game{Profile: "short"}, cantstop.WithDiceSource(dice))

		gameID, err := st.Manager.CreateGame(ctx, []string{"A", "B"}, "")
		require.NoError(t, err)

		bot := service.NewBotService(st.Logger, st.Manager, zeroSource{})

		// When: the bot plays A's turn
		result, err := bot.PlayTurn(ctx, gameID)
		require.NoError(t, err)

		// Then: column 2 is completed and banked after one roll
		assert.Equal(t, "A", result.Player)
		assert.Equal(t, 1, result.Rolls)
		assert.False(t, result.Busted)
		assert.Equal(t, []entity.ColumnID{2}, result.Bank.Completed)
		assert.False(t, result.Bank.Won)

		// And: the next turn busts because column 2 is closed
		dice.Push(1, 1, 1, 1)

		result, err = bot.PlayTurn(ctx, gameID)
		require.NoError(t, err)

		assert.Equal(t, "B", result.Player)
		assert.True(t, result.Busted)

		snapshot, err := st.Manager.Snapshot(ctx, gameID)
		require.NoError(t, err)
		assert.Equal(t, "A", snapshot.ActivePlayer)
	})

	t.Run("Stops on a canceled context", func(t *testing.T) {
		_, st := suite.New(t, config.Game{Profile: "standard"})

		gameID, err := st.Manager.CreateGame(context.Background(), []string{"A"}, "")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		bot := service.NewBotService(st.Logger, st.Manager, zeroSource{})

		_, err = bot.PlayTurn(ctx, gameID)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestBotService_PlayOut(t *testing.T) {
	t.Run("Plays until someone wins", func(t *testing.T) {
		for seed := uint64(1); seed <= 5; seed++ {
			// Given: seeded dice and a seeded bot
			source := rand.New(rand.NewPCG(seed, seed+1)) //nolint: gosec // test dice
			ctx, st := suite.New(t, config.Game{Profile: "short"}, cantstop.WithDiceSource(source))

			gameID, err := st.Manager.CreateGame(ctx, []string{"red", "blue", "green"}, "")
			require.NoError(t, err)

			bot := service.NewBotService(st.Logger, st.Manager, rand.New(rand.NewPCG(seed*31, seed))) //nolint: gosec // test policy

			// When: the bot plays the game out
			winner, turns, err := bot.PlayOut(ctx, gameID, 5000)
			require.NoError(t, err, "seed %d", seed)

			// Then: the winner holds enough completed columns
			assert.Positive(t, turns)

			snapshot, err := st.Manager.Snapshot(ctx, gameID)
			require.NoError(t, err)
			assert.Equal(t, winner, snapshot.Winner)
			assert.Equal(t, "finished", snapshot.Phase)

			for _, player := range snapshot.Players {
				if player.Name == winner {
					assert.GreaterOrEqual(t, len(player.Completed), snapshot.WinThreshold, "seed %d", seed)
				}
			}
		}
	})

	t.Run("Gives up after the turn limit", func(t *testing.T) {
		dice := suite.NewScriptedDice(t, 3, 3, 3, 5)
		ctx, st := suite.New(t, config.Game{Profile: "standard"}, cantstop.WithDiceSource(dice))

		gameID, err := st.Manager.CreateGame(ctx, []string{"A", "B"}, "")
		require.NoError(t, err)

		bot := service.NewBotService(st.Logger, st.Manager, zeroSource{})

		winner, turns, err := bot.PlayOut(ctx, gameID, 1)

		require.ErrorIs(t, err, service.ErrTurnLimit)
		assert.Empty(t, winner)
		assert.Equal(t, 1, turns)
	})
}
