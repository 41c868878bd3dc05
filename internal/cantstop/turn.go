package cantstop

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rocketscienceinc/cantstop/internal/apperror"
	"github.com/rocketscienceinc/cantstop/internal/dice"
	"github.com/rocketscienceinc/cantstop/internal/entity"
)

// SumOption is one playable way to use a roll: one or two column ids, ascending.
type SumOption []entity.ColumnID

// RollResult is what a roll offers the active player. Bust is set when no
// option is playable; the caller then has to apply the bust signal.
type RollResult struct {
	Dice    [dice.Count]int `json:"dice"`
	Options []SumOption     `json:"options"`
	Bust    bool            `json:"bust"`
}

// Outcome tells how a selection was resolved.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeBusted
	OutcomeChoiceRequired
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeBusted:
		return "busted"
	case OutcomeChoiceRequired:
		return "choice_required"
	default:
		return "unknown"
	}
}

// Selection is the result of ApplySelection. With OutcomeChoiceRequired,
// Choices lists the columns the player has to pick one from.
type Selection struct {
	Outcome  Outcome           `json:"outcome"`
	Advanced []entity.ColumnID `json:"advanced,omitempty"`
	Choices  []entity.ColumnID `json:"choices,omitempty"`
}

// Applied reports whether the selection moved white pieces; false means a
// bust or a pending choice.
func (that Selection) Applied() bool {
	return that.Outcome == OutcomeApplied
}

// BankResult is the result of StopTurn.
type BankResult struct {
	Player    string            `json:"player"`
	Completed []entity.ColumnID `json:"completed"`
	Won       bool              `json:"won"`
}

// Roll - rolls the dice and offers the sums the active player may play.
func (that *Board) Roll() (RollResult, error) {
	switch that.phase {
	case PhaseAwaitingRoll, PhaseAdvanced:
	case PhaseFinished:
		return RollResult{}, apperror.ErrGameFinished
	default:
		return RollResult{}, fmt.Errorf("%w: cannot roll in phase %s", apperror.ErrOutOfTurnOrder, that.phase)
	}

	values := that.dice.Roll()

	pairs, err := dice.DeriveSums(values)
	if err != nil {
		return RollResult{}, fmt.Errorf("failed to derive sums: %w", err)
	}

	offered := that.legalOptions(pairs)
	that.offered = offered
	that.choices = nil

	if len(offered) == 0 {
		that.phase = PhaseBustPending
		return RollResult{Dice: values, Bust: true}, nil
	}

	that.phase = PhaseSumsOffered

	return RollResult{Dice: values, Options: cloneOptions(offered)}, nil
}

// OfferedOptions returns the options of the pending roll.
func (that *Board) OfferedOptions() []SumOption {
	return cloneOptions(that.offered)
}

// PendingChoices returns the columns of a pending forced choice.
func (that *Board) PendingChoices() []entity.ColumnID {
	return slices.Clone(that.choices)
}

// legalOptions keeps, for every pair, the sums whose column is playable.
func (that *Board) legalOptions(pairs []dice.Pair) []SumOption {
	playable := that.PlayableCols()

	offered := make([]SumOption, 0, len(pairs))
	for _, pair := range pairs {
		option := make(SumOption, 0, len(pair))
		for _, sum := range pair {
			if _, ok := playable[entity.ColumnID(sum)]; ok {
				option = append(option, entity.ColumnID(sum))
			}
		}

		if len(option) == 0 {
			continue
		}

		if slices.ContainsFunc(offered, func(o SumOption) bool { return slices.Equal(o, option) }) {
			continue
		}

		offered = append(offered, option)
	}

	return offered
}

// ApplySelection - places or advances a white piece for every chosen sum.
//
// An empty selection is the bust signal: the turn's white pieces are removed
// and the next player becomes active. Otherwise chosen must be drawn from one
// offered option, or be one of the pending choices. When the selection would
// open two new columns with one white piece left, nothing moves and the
// result asks for a single column instead.
func (that *Board) ApplySelection(chosen []entity.ColumnID) (Selection, error) {
	if that.phase == PhaseFinished {
		return Selection{}, apperror.ErrGameFinished
	}

	if len(chosen) == 0 {
		switch that.phase {
		case PhaseSumsOffered, PhaseAwaitingChoice, PhaseBustPending:
			return that.bust(), nil
		default:
			return Selection{}, fmt.Errorf("%w: cannot bust in phase %s", apperror.ErrOutOfTurnOrder, that.phase)
		}
	}

	switch that.phase {
	case PhaseSumsOffered:
		if !that.isOffered(chosen) {
			return Selection{}, fmt.Errorf("%w: %v", apperror.ErrIllegalSelection, chosen)
		}
	case PhaseAwaitingChoice:
		if len(chosen) != 1 || !slices.Contains(that.choices, chosen[0]) {
			return Selection{}, fmt.Errorf("%w: %v, pick one of %v", apperror.ErrIllegalSelection, chosen, that.choices)
		}
	default:
		return Selection{}, fmt.Errorf("%w: cannot select sums in phase %s", apperror.ErrOutOfTurnOrder, that.phase)
	}

	selection := slices.Clone(chosen)
	slices.Sort(selection)

	fresh := that.newColumns(selection)
	if free := that.WhitePiecesLeft(); len(fresh) > free {
		if that.phase == PhaseSumsOffered && len(fresh) == 2 && free == 1 {
			that.phase = PhaseAwaitingChoice
			that.choices = fresh

			return Selection{Outcome: OutcomeChoiceRequired, Choices: slices.Clone(fresh)}, nil
		}

		return Selection{}, fmt.Errorf("%w: %d new columns, %d white pieces left", apperror.ErrPoolOverflow, len(fresh), free)
	}

	for _, id := range selection {
		if !that.columns[id].Playable() {
			return Selection{}, fmt.Errorf("%w: column %d", entity.ErrColumnCompleted, id)
		}
	}

	player := that.ActivePlayer()
	for _, id := range selection {
		column := that.columns[id]
		if err := column.PlaceOrAdvance(player); err != nil {
			return Selection{}, fmt.Errorf("failed to advance column %d: %w", id, err)
		}

		that.pool[id] = column
	}

	if len(that.pool) > MaxWhitePieces {
		return Selection{}, fmt.Errorf("%w: %d white pieces on the board", apperror.ErrPoolOverflow, len(that.pool))
	}

	that.phase = PhaseAdvanced
	that.offered = nil
	that.choices = nil

	return Selection{Outcome: OutcomeApplied, Advanced: selection}, nil
}

func (that *Board) isOffered(chosen []entity.ColumnID) bool {
	if len(chosen) > 2 {
		return false
	}

	for _, option := range that.offered {
		if isSubset(chosen, option) {
			return true
		}
	}

	return false
}

// isSubset reports whether chosen is a sub-multiset of option.
func isSubset(chosen []entity.ColumnID, option SumOption) bool {
	if len(chosen) > len(option) {
		return false
	}

	remaining := slices.Clone(option)
	for _, id := range chosen {
		i := slices.Index(remaining, id)
		if i < 0 {
			return false
		}
		remaining = slices.Delete(remaining, i, i+1)
	}

	return true
}

// newColumns returns the distinct selected columns without a white piece.
func (that *Board) newColumns(selection []entity.ColumnID) []entity.ColumnID {
	fresh := make([]entity.ColumnID, 0, len(selection))
	for _, id := range selection {
		if _, ok := that.pool[id]; ok || slices.Contains(fresh, id) {
			continue
		}
		fresh = append(fresh, id)
	}

	return fresh
}

func (that *Board) bust() Selection {
	for _, column := range that.pool {
		column.DiscardWhitePiece()
	}
	clear(that.pool)

	that.passTurn()

	return Selection{Outcome: OutcomeBusted}
}

// StopTurn - banks the turn: every white piece becomes its owner's committed
// marker. The active player wins once it has completed enough columns;
// otherwise the next player becomes active.
func (that *Board) StopTurn() (BankResult, error) {
	switch that.phase {
	case PhaseAdvanced:
	case PhaseFinished:
		return BankResult{}, apperror.ErrGameFinished
	default:
		return BankResult{}, fmt.Errorf("%w: cannot stop in phase %s", apperror.ErrOutOfTurnOrder, that.phase)
	}

	player := that.ActivePlayer()
	result := BankResult{Player: player.Name, Completed: []entity.ColumnID{}}

	for _, id := range slices.Sorted(maps.Keys(that.pool)) {
		done, err := that.pool[id].Commit()
		if err != nil {
			return BankResult{}, fmt.Errorf("failed to bank column %d: %w", id, err)
		}

		if done {
			result.Completed = append(result.Completed, id)
		}
	}
	clear(that.pool)

	if player.CompletedCount() >= that.winThreshold {
		that.winner = player
		that.phase = PhaseFinished
		that.offered = nil
		that.choices = nil
		result.Won = true

		return result, nil
	}

	that.passTurn()

	return result, nil
}

func cloneOptions(options []SumOption) []SumOption {
	if options == nil {
		return nil
	}

	cloned := make([]SumOption, len(options))
	for i, option := range options {
		cloned[i] = slices.Clone(option)
	}

	return cloned
}
