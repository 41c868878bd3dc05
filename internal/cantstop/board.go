// Package cantstop runs a game of Can't Stop: it owns the columns, the players
// and the dice, and enforces the turn protocol.
//
// A Board is not safe for concurrent use. Hosts that share a board between
// goroutines must serialize calls, one lock per board.
package cantstop

import (
	"fmt"

	"github.com/rocketscienceinc/cantstop/internal/apperror"
	"github.com/rocketscienceinc/cantstop/internal/dice"
	"github.com/rocketscienceinc/cantstop/internal/entity"
)

// MaxWhitePieces is the size of the shared pool of white pieces.
const MaxWhitePieces = 3

// Phase is the position of the board in the turn protocol.
type Phase int

const (
	PhaseAwaitingRoll Phase = iota
	PhaseSumsOffered
	PhaseAwaitingChoice
	PhaseBustPending
	PhaseAdvanced
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingRoll:
		return "awaiting_roll"
	case PhaseSumsOffered:
		return "sums_offered"
	case PhaseAwaitingChoice:
		return "awaiting_choice"
	case PhaseBustPending:
		return "bust_pending"
	case PhaseAdvanced:
		return "advanced"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

type Board struct {
	profile      entity.Profile
	winThreshold int

	columns map[entity.ColumnID]*entity.Column
	players []*entity.Player
	active  int
	dice    *dice.Dice

	// pool holds the columns carrying a white piece this turn.
	pool map[entity.ColumnID]*entity.Column

	phase   Phase
	offered []SumOption
	choices []entity.ColumnID
	winner  *entity.Player
}

type options struct {
	source       dice.Source
	winThreshold int
}

// BoardOption customizes a new Board.
type BoardOption func(*options)

// WithDiceSource replaces the random source behind the dice.
func WithDiceSource(source dice.Source) BoardOption {
	return func(o *options) {
		o.source = source
	}
}

// WithWinThreshold overrides the profile's number of columns needed to win.
func WithWinThreshold(threshold int) BoardOption {
	return func(o *options) {
		o.winThreshold = threshold
	}
}

// NewBoard - sets up players in turn order and the columns of profile.
// The first player is active.
func NewBoard(playerNames []string, profile entity.Profile, opts ...BoardOption) (*Board, error) {
	if _, err := entity.ParseProfile(string(profile)); err != nil {
		return nil, err
	}

	conf := options{winThreshold: profile.WinThreshold()}
	for _, opt := range opts {
		opt(&conf)
	}

	if conf.winThreshold <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidWinThreshold, conf.winThreshold)
	}

	players, err := newPlayers(playerNames)
	if err != nil {
		return nil, err
	}

	columns := make(map[entity.ColumnID]*entity.Column, len(entity.ColumnIDs()))
	for _, id := range entity.ColumnIDs() {
		length, err := profile.ColumnLength(id)
		if err != nil {
			return nil, fmt.Errorf("failed to size column %d: %w", id, err)
		}

		column, err := entity.NewColumn(id, length)
		if err != nil {
			return nil, fmt.Errorf("failed to build column %d: %w", id, err)
		}

		columns[id] = column
	}

	return &Board{
		profile:      profile,
		winThreshold: conf.winThreshold,
		columns:      columns,
		players:      players,
		dice:         dice.New(conf.source),
		pool:         make(map[entity.ColumnID]*entity.Column, MaxWhitePieces),
		phase:        PhaseAwaitingRoll,
	}, nil
}

func newPlayers(names []string) ([]*entity.Player, error) {
	if len(names) == 0 {
		return nil, apperror.ErrNotEnoughPlayers
	}

	seen := make(map[string]struct{}, len(names))
	players := make([]*entity.Player, 0, len(names))

	for _, name := range names {
		if name == "" {
			return nil, apperror.ErrEmptyPlayerName
		}

		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %s", apperror.ErrDuplicatePlayer, name)
		}
		seen[name] = struct{}{}

		players = append(players, entity.NewPlayer(name))
	}

	return players, nil
}

func (that *Board) Profile() entity.Profile {
	return that.profile
}

func (that *Board) WinThreshold() int {
	return that.winThreshold
}

func (that *Board) Phase() Phase {
	return that.phase
}

func (that *Board) ActivePlayer() *entity.Player {
	return that.players[that.active]
}

// Players returns the players in turn order.
func (that *Board) Players() []*entity.Player {
	players := make([]*entity.Player, len(that.players))
	copy(players, that.players)

	return players
}

func (that *Board) Column(id entity.ColumnID) (*entity.Column, bool) {
	column, ok := that.columns[id]
	return column, ok
}

func (that *Board) Winner() (*entity.Player, bool) {
	return that.winner, that.winner != nil
}

func (that *Board) IsFinished() bool {
	return that.phase == PhaseFinished
}

// LastRoll returns the dice of the latest roll.
func (that *Board) LastRoll() [dice.Count]int {
	return that.dice.Values()
}

// WhitePiecesLeft returns how many white pieces the active player can still place.
func (that *Board) WhitePiecesLeft() int {
	left := MaxWhitePieces - len(that.pool)
	if left < 0 {
		return 0
	}

	return left
}

// PlayableCols returns the columns a sum may target right now: every open
// column, or only the pool columns once all white pieces are placed.
func (that *Board) PlayableCols() map[entity.ColumnID]*entity.Column {
	playable := make(map[entity.ColumnID]*entity.Column, len(that.columns))

	if len(that.pool) >= MaxWhitePieces {
		for id, column := range that.pool {
			playable[id] = column
		}

		return playable
	}

	for id, column := range that.columns {
		if column.Playable() {
			playable[id] = column
		}
	}

	return playable
}

// NextActivePlayer - hands the dice to the next player in turn order. It does
// nothing once the game is won.
func (that *Board) NextActivePlayer() error {
	if that.phase == PhaseFinished {
		return nil
	}

	if that.phase != PhaseAwaitingRoll || len(that.pool) > 0 {
		return fmt.Errorf("%w: phase %s", apperror.ErrTurnInProgress, that.phase)
	}

	that.passTurn()

	return nil
}

func (that *Board) passTurn() {
	that.active = (that.active + 1) % len(that.players)
	that.phase = PhaseAwaitingRoll
	that.offered = nil
	that.choices = nil
}
