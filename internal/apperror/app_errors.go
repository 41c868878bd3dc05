package apperror

import "errors"

// Protocol violations: the caller asked for something the turn state does not allow.
var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrOutOfTurnOrder      = errors.New("action is not allowed in the current turn phase")
	ErrIllegalSelection    = errors.New("selection is not one of the offered sums")
	ErrTurnInProgress      = errors.New("turn is still in progress")
	ErrNotEnoughPlayers    = errors.New("at least one player is required")
	ErrEmptyPlayerName     = errors.New("player name is empty")
	ErrDuplicatePlayer     = errors.New("player name is already taken")
	ErrInvalidWinThreshold = errors.New("win threshold must be positive")
)

// Invariant violations: these point to an engine bug, never to caller error.
var (
	ErrMarkerBackward    = errors.New("committed marker cannot move backward")
	ErrPoolOverflow      = errors.New("no white pieces left in the pool")
	ErrForeignWhitePiece = errors.New("white piece belongs to another player")
)
