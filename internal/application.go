package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/cantstop/internal/apperror"
	"github.com/rocketscienceinc/cantstop/internal/config"
	"github.com/rocketscienceinc/cantstop/internal/entity"
	"github.com/rocketscienceinc/cantstop/internal/repository"
	"github.com/rocketscienceinc/cantstop/internal/service"
	"github.com/rocketscienceinc/cantstop/internal/usecase"
)

// NewEngine - wires the game registry and the game manager for a UI shell.
func NewEngine(logger *slog.Logger, conf *config.Config) (*usecase.GameManager, error) {
	log := logger.With("component", "app")

	if _, err := entity.ParseProfile(conf.Game.Profile); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	if conf.Game.WinThreshold < 0 {
		return nil, fmt.Errorf("invalid game config: %w: %d", apperror.ErrInvalidWinThreshold, conf.Game.WinThreshold)
	}

	gameRepo := repository.NewGameRepository()
	gameManager := usecase.NewGameManager(logger, gameRepo, conf.Game)

	log.Info("engine ready", "profile", conf.Game.Profile, "winThreshold", conf.Game.WinThreshold)

	return gameManager, nil
}

// RunApp - runs a bot match between the configured players and logs the result.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameManager, err := NewEngine(logger, conf)
	if err != nil {
		return err
	}

	return playMatch(ctx, log, gameManager, service.NewBotService(logger, gameManager, nil), conf.SelfPlay)
}

func playMatch(ctx context.Context, log *slog.Logger, gameManager *usecase.GameManager, bot service.BotService, conf config.SelfPlay) error {
	gameID, err := gameManager.CreateGame(ctx, conf.Players, "")
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	defer func() {
		if err := gameManager.EndGame(context.WithoutCancel(ctx), gameID); err != nil {
			log.Error("could not end game", "error", err)
		}
	}()

	winner, turns, err := bot.PlayOut(ctx, gameID, conf.MaxTurns)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	snapshot, err := gameManager.Snapshot(ctx, gameID)
	if err != nil {
		return fmt.Errorf("could not read final board: %w", err)
	}

	log.Info("match finished", "gameID", gameID, "winner", winner, "turns", turns, "players", snapshot.Players)

	return nil
}
