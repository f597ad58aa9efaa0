package model

import "fmt"

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

func (p Position) offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the algebraic square name, e.g. "e4".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", p.Col+'a', 8-p.Row)
}

// Move is a request to move the piece on From to To. Promotion only matters
// for a pawn reaching the far rank; empty means queen.
type Move struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func NewMove(fromRow, fromCol, toRow, toCol int) Move {
	return Move{From: Position{Row: fromRow, Col: fromCol}, To: Position{Row: toRow, Col: toCol}}
}

// WithPromotion returns a copy of m promoting to t.
func (m Move) WithPromotion(t PieceType) Move {
	m.Promotion = t
	return m
}

// String renders coordinate notation such as "e2e4" or "e7e8n".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != "" {
		s += string(m.Promotion.symbol())
	}
	return s
}

func (m Move) sameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
