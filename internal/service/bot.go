package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/cantstop/internal/cantstop"
	"github.com/rocketscienceinc/cantstop/internal/dice"
	"github.com/rocketscienceinc/cantstop/internal/entity"
)

var ErrTurnLimit = errors.New("turn limit reached without a winner")

// stopOdds - the bot keeps rolling with probability 1 - 1/stopOdds.
const stopOdds = 3

type gameRunner interface {
	Roll(ctx context.Context, gameID string) (cantstop.RollResult, error)
	ApplySelection(ctx context.Context, gameID string, chosen []entity.ColumnID) (cantstop.Selection, error)
	StopTurn(ctx context.Context, gameID string) (cantstop.BankResult, error)
	Snapshot(ctx context.Context, gameID string) (cantstop.Snapshot, error)
}

// TurnResult describes one turn played by the bot.
type TurnResult struct {
	Player string
	Rolls  int
	Busted bool
	Bank   cantstop.BankResult
}

type BotService interface {
	PlayTurn(ctx context.Context, gameID string) (TurnResult, error)
	PlayOut(ctx context.Context, gameID string, maxTurns int) (string, int, error)
}

type botService struct {
	logger *slog.Logger
	games  gameRunner
	rng    dice.Source
}

// NewBotService - builds a bot that picks options at random. A nil rng uses
// the global generator.
func NewBotService(logger *slog.Logger, games gameRunner, rng dice.Source) BotService {
	if rng == nil {
		rng = dice.GlobalSource()
	}

	return &botService{
		logger: logger.With("component", "bot"),
		games:  games,
		rng:    rng,
	}
}

// PlayTurn - plays the active player's turn until it busts or banks.
func (that *botService) PlayTurn(ctx context.Context, gameID string) (TurnResult, error) {
	snapshot, err := that.games.Snapshot(ctx, gameID)
	if err != nil {
		return TurnResult{}, fmt.Errorf("failed to read game: %w", err)
	}

	result := TurnResult{Player: snapshot.ActivePlayer}

	for {
		if err = ctx.Err(); err != nil {
			return result, fmt.Errorf("bot turn interrupted: %w", err)
		}

		roll, err := that.games.Roll(ctx, gameID)
		if err != nil {
			return result, fmt.Errorf("bot failed to roll: %w", err)
		}
		result.Rolls++

		if roll.Bust {
			if _, err = that.games.ApplySelection(ctx, gameID, nil); err != nil {
				return result, fmt.Errorf("bot failed to bust: %w", err)
			}

			result.Busted = true

			return result, nil
		}

		if err = that.advance(ctx, gameID, roll.Options); err != nil {
			return result, err
		}

		stop, err := that.shouldStop(ctx, gameID)
		if err != nil {
			return result, err
		}

		if stop {
			if result.Bank, err = that.games.StopTurn(ctx, gameID); err != nil {
				return result, fmt.Errorf("bot failed to stop: %w", err)
			}

			return result, nil
		}
	}
}

func (that *botService) advance(ctx context.Context, gameID string, options []cantstop.SumOption) error {
	option := options[that.rng.IntN(len(options))]

	selection, err := that.games.ApplySelection(ctx, gameID, option)
	if err != nil {
		return fmt.Errorf("bot failed to apply %v: %w", option, err)
	}

	if selection.Outcome != cantstop.OutcomeChoiceRequired {
		return nil
	}

	choice := selection.Choices[that.rng.IntN(len(selection.Choices))]
	if _, err = that.games.ApplySelection(ctx, gameID, []entity.ColumnID{choice}); err != nil {
		return fmt.Errorf("bot failed to pick column %d: %w", choice, err)
	}

	return nil
}

// shouldStop - always banks a white piece sitting on a terminal space.
func (that *botService) shouldStop(ctx context.Context, gameID string) (bool, error) {
	snapshot, err := that.games.Snapshot(ctx, gameID)
	if err != nil {
		return false, fmt.Errorf("failed to read game: %w", err)
	}

	for _, column := range snapshot.Columns {
		if column.WhitePiece != nil && column.WhitePiece.Position == column.Length {
			return true, nil
		}
	}

	return that.rng.IntN(stopOdds) == 0, nil
}

// PlayOut - plays turns until someone wins. Returns the winner and the number
// of turns played.
func (that *botService) PlayOut(ctx context.Context, gameID string, maxTurns int) (string, int, error) {
	log := that.logger.With("method", "playOut", "gameID", gameID)

	for turn := 1; turn <= maxTurns; turn++ {
		result, err := that.PlayTurn(ctx, gameID)
		if err != nil {
			return "", turn, err
		}

		if result.Busted {
			log.Debug("bust", "turn", turn, "player", result.Player, "rolls", result.Rolls)
			continue
		}

		log.Debug("banked", "turn", turn, "player", result.Player, "rolls", result.Rolls, "completed", result.Bank.Completed)

		if result.Bank.Won {
			return result.Player, turn, nil
		}
	}

	return "", maxTurns, fmt.Errorf("%w: %d turns", ErrTurnLimit, maxTurns)
}
