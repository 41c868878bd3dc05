package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/cantstop/internal/cantstop"
	"github.com/rocketscienceinc/cantstop/internal/config"
	"github.com/rocketscienceinc/cantstop/internal/entity"
)

type gameRepo interface {
	Create(ctx context.Context, id string, board *cantstop.Board) error
	GetByID(ctx context.Context, id string) (*cantstop.Board, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs many games side by side. Calls on one game are
// serialized; different games do not block each other.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	defaults  config.Game
	boardOpts []cantstop.BoardOption

	locks sync.Map
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, defaults config.Game, boardOpts ...cantstop.BoardOption) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,

		defaults:  defaults,
		boardOpts: boardOpts,
	}
}

// CreateGame - sets up a board and returns the id of the new game. An empty
// profile selects the configured default.
func (that *GameManager) CreateGame(ctx context.Context, playerNames []string, profile entity.Profile) (string, error) {
	if profile == "" {
		parsed, err := entity.ParseProfile(that.defaults.Profile)
		if err != nil {
			return "", fmt.Errorf("failed to read default profile: %w", err)
		}
		profile = parsed
	}

	opts := make([]cantstop.BoardOption, 0, len(that.boardOpts)+1)
	if that.defaults.WinThreshold > 0 {
		opts = append(opts, cantstop.WithWinThreshold(that.defaults.WinThreshold))
	}
	opts = append(opts, that.boardOpts...)

	board, err := cantstop.NewBoard(playerNames, profile, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create board: %w", err)
	}

	gameID := uuid.NewString()
	if err = that.gameRepo.Create(ctx, gameID, board); err != nil {
		return "", fmt.Errorf("failed to store game: %w", err)
	}

	that.logger.Info("game created",
		"gameID", gameID,
		"profile", profile,
		"players", len(playerNames),
		"winThreshold", board.WinThreshold(),
	)

	return gameID, nil
}

func (that *GameManager) Roll(ctx context.Context, gameID string) (cantstop.RollResult, error) {
	log := that.logger.With("method", "roll", "gameID", gameID)

	var result cantstop.RollResult
	err := that.withGame(ctx, gameID, func(board *cantstop.Board) error {
		player := board.ActivePlayer().Name

		var err error
		if result, err = board.Roll(); err != nil {
			return fmt.Errorf("failed to roll: %w", err)
		}

		log.Debug("dice rolled", "player", player, "dice", result.Dice, "options", result.Options, "bust", result.Bust)

		return nil
	})
	if err != nil {
		return cantstop.RollResult{}, err
	}

	return result, nil
}

func (that *GameManager) ApplySelection(ctx context.Context, gameID string, chosen []entity.ColumnID) (cantstop.Selection, error) {
	log := that.logger.With("method", "applySelection", "gameID", gameID)

	var selection cantstop.Selection
	err := that.withGame(ctx, gameID, func(board *cantstop.Board) error {
		player := board.ActivePlayer().Name

		var err error
		if selection, err = board.ApplySelection(chosen); err != nil {
			return fmt.Errorf("failed to apply selection: %w", err)
		}

		switch selection.Outcome {
		case cantstop.OutcomeBusted:
			log.Info("player busted", "player", player, "next", board.ActivePlayer().Name)
		case cantstop.OutcomeChoiceRequired:
			log.Debug("single column choice required", "player", player, "choices", selection.Choices)
		default:
			log.Debug("white pieces advanced", "player", player, "columns", selection.Advanced)
		}

		return nil
	})
	if err != nil {
		return cantstop.Selection{}, err
	}

	return selection, nil
}

func (that *GameManager) StopTurn(ctx context.Context, gameID string) (cantstop.BankResult, error) {
	log := that.logger.With("method", "stopTurn", "gameID", gameID)

	var result cantstop.BankResult
	err := that.withGame(ctx, gameID, func(board *cantstop.Board) error {
		var err error
		if result, err = board.StopTurn(); err != nil {
			return fmt.Errorf("failed to stop turn: %w", err)
		}

		if result.Won {
			log.Info("game won", "player", result.Player, "completed", result.Completed)
			return nil
		}

		log.Info("turn banked", "player", result.Player, "completed", result.Completed, "next", board.ActivePlayer().Name)

		return nil
	})
	if err != nil {
		return cantstop.BankResult{}, err
	}

	return result, nil
}

func (that *GameManager) NextActivePlayer(ctx context.Context, gameID string) error {
	return that.withGame(ctx, gameID, func(board *cantstop.Board) error {
		if err := board.NextActivePlayer(); err != nil {
			return fmt.Errorf("failed to pass turn: %w", err)
		}

		return nil
	})
}

func (that *GameManager) Snapshot(ctx context.Context, gameID string) (cantstop.Snapshot, error) {
	var snapshot cantstop.Snapshot
	err := that.withGame(ctx, gameID, func(board *cantstop.Board) error {
		snapshot = board.Snapshot()
		return nil
	})
	if err != nil {
		return cantstop.Snapshot{}, err
	}

	return snapshot, nil
}

// EndGame - drops a game from the registry.
func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "endGame", "gameID", gameID)

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	that.locks.Delete(gameID)

	log.Info("game deleted")

	return nil
}

func (that *GameManager) withGame(ctx context.Context, gameID string, fn func(board *cantstop.Board) error) error {
	board, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	lock := that.lockFor(gameID)
	lock.Lock()
	defer lock.Unlock()

	return fn(board)
}

func (that *GameManager) lockFor(gameID string) *sync.Mutex {
	lock, _ := that.locks.LoadOrStore(gameID, &sync.Mutex{})
	return lock.(*sync.Mutex) //nolint: forcetypeassert // only mutexes are stored
}
