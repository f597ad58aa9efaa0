package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var letterTypes = map[rune]PieceType{
	'k': King, 'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight, 'p': Pawn,
}

// boardFromDiagram builds a board from eight rank strings, row 0 first.
// Uppercase letters are white, lowercase black, '.' empty. Every piece
// starts unmoved.
func boardFromDiagram(t *testing.T, rows ...string) *Board {
	t.Helper()
	if len(rows) != 8 {
		t.Fatalf("diagram has %d rows, want 8", len(rows))
	}
	board := newEmptyBoard()
	for row, line := range rows {
		if len(line) != 8 {
			t.Fatalf("diagram row %d is %q, want 8 cells", row, line)
		}
		for col, r := range line {
			if r == '.' {
				continue
			}
			color := Black
			if r >= 'A' && r <= 'Z' {
				color = White
				r += 'a' - 'A'
			}
			kind, ok := letterTypes[r]
			if !ok {
				t.Fatalf("unknown piece letter %q at row %d col %d", r, row, col)
			}
			board.cells[row][col] = newPiece(kind, color)
		}
	}
	return board
}

func markMoved(t *testing.T, b *Board, pos Position) {
	t.Helper()
	p := b.at(pos)
	if p == nil {
		t.Fatalf("markMoved: no piece on %s", pos)
	}
	p.hasMoved = true
}

func sq(name string) Position {
	return Position{Row: 8 - int(name[1]-'0'), Col: int(name[0] - 'a')}
}

func mv(from, to string) Move {
	return Move{From: sq(from), To: sq(to)}
}

func destinations(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To.String())
	}
	return out
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate.sameSquares(m) {
			return true
		}
	}
	return false
}

// gameOpts lets cmp look inside the engine types.
var gameOpts = cmp.AllowUnexported(Game{}, Board{}, Piece{})

func playMoves(t *testing.T, g *Game, moves ...Move) {
	t.Helper()
	for _, m := range moves {
		if err := g.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%s) error: %v\n%s", m, err, g.board)
		}
	}
}
