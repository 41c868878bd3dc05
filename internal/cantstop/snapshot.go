package cantstop

import (
	"slices"

	"github.com/rocketscienceinc/cantstop/internal/dice"
	"github.com/rocketscienceinc/cantstop/internal/entity"
)

// Snapshot is a read-only copy of the board for UI shells.
type Snapshot struct {
	Profile         entity.Profile    `json:"profile"`
	WinThreshold    int               `json:"win_threshold"`
	Phase           string            `json:"phase"`
	ActivePlayer    string            `json:"active_player"`
	Winner          string            `json:"winner,omitempty"`
	Dice            [dice.Count]int   `json:"dice"`
	Options         []SumOption       `json:"options,omitempty"`
	Choices         []entity.ColumnID `json:"choices,omitempty"`
	WhitePiecesLeft int               `json:"white_pieces_left"`
	Columns         []ColumnView      `json:"columns"`
	Players         []PlayerView      `json:"players"`
}

type ColumnView struct {
	ID          entity.ColumnID `json:"id"`
	Length      int             `json:"length"`
	CompletedBy string          `json:"completed_by,omitempty"`
	WhitePiece  *PieceView      `json:"white_piece,omitempty"`
	Markers     []PieceView     `json:"markers,omitempty"`
}

type PieceView struct {
	Player   string `json:"player"`
	Position int    `json:"position"`
}

type PlayerView struct {
	Name      string            `json:"name"`
	Completed []entity.ColumnID `json:"completed"`
}

func (that *Board) Snapshot() Snapshot {
	snapshot := Snapshot{
		Profile:         that.profile,
		WinThreshold:    that.winThreshold,
		Phase:           that.phase.String(),
		ActivePlayer:    that.ActivePlayer().Name,
		Dice:            that.dice.Values(),
		Options:         cloneOptions(that.offered),
		Choices:         slices.Clone(that.choices),
		WhitePiecesLeft: that.WhitePiecesLeft(),
		Columns:         make([]ColumnView, 0, len(that.columns)),
		Players:         make([]PlayerView, 0, len(that.players)),
	}

	if that.winner != nil {
		snapshot.Winner = that.winner.Name
	}

	for _, id := range entity.ColumnIDs() {
		snapshot.Columns = append(snapshot.Columns, viewColumn(that.columns[id]))
	}

	for _, player := range that.players {
		snapshot.Players = append(snapshot.Players, PlayerView{
			Name:      player.Name,
			Completed: player.CompletedColumns(),
		})
	}

	return snapshot
}

func viewColumn(column *entity.Column) ColumnView {
	view := ColumnView{
		ID:     column.ID(),
		Length: column.Length(),
	}

	if owner, ok := column.CompletedBy(); ok {
		view.CompletedBy = owner.Name
	}

	if piece, ok := column.WhitePiece(); ok {
		view.WhitePiece = &PieceView{Player: piece.Owner().Name, Position: piece.Space().Index()}
	}

	for _, marker := range column.Markers() {
		view.Markers = append(view.Markers, PieceView{Player: marker.Owner().Name, Position: marker.Space().Index()})
	}

	return view
}
