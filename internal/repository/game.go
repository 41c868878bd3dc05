package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/cantstop/internal/cantstop"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")
)

// GameRepository keeps the boards of running games by id. Boards live only
// as long as the process.
type GameRepository interface {
	Create(ctx context.Context, id string, board *cantstop.Board) error
	GetByID(ctx context.Context, id string) (*cantstop.Board, error)
	DeleteByID(ctx context.Context, id string) error
}

type memoryGames struct {
	mu    sync.RWMutex
	games map[string]*cantstop.Board
}

func NewGameRepository() GameRepository {
	return &memoryGames{
		games: make(map[string]*cantstop.Board),
	}
}

func (that *memoryGames) Create(ctx context.Context, id string, board *cantstop.Board) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; ok {
		return fmt.Errorf("%w: %s", ErrGameAlreadyExists, id)
	}

	that.games[id] = board

	return nil
}

func (that *memoryGames) GetByID(ctx context.Context, id string) (*cantstop.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	board, ok := that.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}

	return board, nil
}

func (that *memoryGames) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}
