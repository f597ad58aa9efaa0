package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Title returns the capitalised name used in status text.
func (c Color) Title() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// pawnDirection is the row delta of a pawn step. Move generation and attack
// detection both read it so the two can never disagree.
func (c Color) pawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnHomeRow() int {
	if c == White {
		return 6
	}
	return 1
}

func (c Color) backRank() int {
	if c == White {
		return 7
	}
	return 0
}

// promotionRow is the opponent's back rank.
func (c Color) promotionRow() int {
	return c.Opposite().backRank()
}
