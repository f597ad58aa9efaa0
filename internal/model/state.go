package model

import "fmt"

type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCheckmate Outcome = "checkmate"
	OutcomeStalemate Outcome = "stalemate"
)

// Status summarises the position for the side to move.
type Status struct {
	ToMove  Color
	Check   bool
	Outcome Outcome
	Winner  Color // set only on checkmate
}

func (g *Game) Status() Status {
	status := Status{
		ToMove: g.toMove,
		Check:  g.IsInCheck(g.toMove),
	}
	if !hasLegalMove(g.board, g.toMove) {
		if status.Check {
			status.Outcome = OutcomeCheckmate
			status.Winner = g.toMove.Opposite()
		} else {
			status.Outcome = OutcomeStalemate
		}
	}
	return status
}

func (s Status) Over() bool {
	return s.Outcome != OutcomeNone
}

func (s Status) Text() string {
	switch s.Outcome {
	case OutcomeCheckmate:
		return fmt.Sprintf("Checkmate! %s wins.", s.Winner.Title())
	case OutcomeStalemate:
		return "Stalemate!"
	}
	text := s.ToMove.Title() + " to move"
	if s.Check {
		text += " (in check)"
	}
	return text
}

// GameState is the JSON view of a game sent to clients.
type GameState struct {
	ID          string     `json:"gameId,omitempty"`
	Board       [][]*Piece `json:"board"`
	ToMove      Color      `json:"toMove"`
	MoveHistory []Move     `json:"moveHistory"`
	IsCheck     bool       `json:"isCheck"`
	Resolve     *Outcome   `json:"resolve"`
	Status      string     `json:"status"`
	LastMove    *Move      `json:"lastMove"`
}

// Snapshot copies the game into a GameState. Nothing in it aliases the live
// board.
func (g *Game) Snapshot() GameState {
	status := g.Status()
	state := GameState{
		Board:       make([][]*Piece, 8),
		ToMove:      g.toMove,
		MoveHistory: g.History(),
		IsCheck:     status.Check,
		Status:      status.Text(),
	}
	for row := 0; row < 8; row++ {
		state.Board[row] = make([]*Piece, 8)
		for col := 0; col < 8; col++ {
			if p, ok := g.board.PieceAt(Position{Row: row, Col: col}); ok {
				state.Board[row][col] = &p
			}
		}
	}
	if status.Over() {
		resolve := status.Outcome
		state.Resolve = &resolve
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		state.LastMove = &last
	}
	return state
}
