package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/cantstop/internal/cantstop"
	"github.com/rocketscienceinc/cantstop/internal/config"
	"github.com/rocketscienceinc/cantstop/internal/logger"
	"github.com/rocketscienceinc/cantstop/internal/repository"
	"github.com/rocketscienceinc/cantstop/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Games   repository.GameRepository
	Manager *usecase.GameManager
}

// New - builds a game manager over a fresh in-memory registry. Extra board
// options, such as a scripted dice source, apply to every game it creates.
func New(t *testing.T, defaults config.Game, boardOpts ...cantstop.BoardOption) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	log := logger.New("debug", io.Discard)
	games := repository.NewGameRepository()

	return ctx, &Suite{
		T:       t,
		Logger:  log,
		Games:   games,
		Manager: usecase.NewGameManager(log, games, defaults, boardOpts...),
	}
}

// ScriptedDice replays die faces (1..6) in order; it fails the test when it
// runs out.
type ScriptedDice struct {
	t     *testing.T
	faces []int
}

func NewScriptedDice(t *testing.T, faces ...int) *ScriptedDice {
	t.Helper()

	return &ScriptedDice{t: t, faces: faces}
}

// IntN returns the next face minus one, the way a uniform source would.
func (that *ScriptedDice) IntN(n int) int {
	if len(that.faces) == 0 {
		that.t.Fatalf("scripted dice exhausted")
		return 0
	}

	face := that.faces[0]
	that.faces = that.faces[1:]

	if face < 1 || face > n {
		that.t.Fatalf("scripted face %d outside 1..%d", face, n)
	}

	return face - 1
}

// Push appends faces for later rolls.
func (that *ScriptedDice) Push(faces ...int) {
	that.faces = append(that.faces, faces...)
}
