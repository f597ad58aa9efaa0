package model

import "strings"

var (
	rookDirs   = []Position{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}
	bishopDirs = []Position{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}
	queenDirs  = append(append([]Position{}, rookDirs...), bishopDirs...)
	knightDirs = []Position{{Row: -2, Col: -1}, {Row: -2, Col: 1}, {Row: -1, Col: -2}, {Row: -1, Col: 2}, {Row: 1, Col: -2}, {Row: 1, Col: 2}, {Row: 2, Col: -1}, {Row: 2, Col: 1}}
	kingDirs   = []Position{{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1}, {Row: 0, Col: -1}, {Row: 0, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
)

var backRankOrder = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid of optional pieces. Row 0 is black's back rank and
// row 7 is white's. It never validates: legality lives in the move generator.
type Board struct {
	cells [8][8]*Piece
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	board := newEmptyBoard()
	for col := 0; col < 8; col++ {
		board.cells[Black.backRank()][col] = newPiece(backRankOrder[col], Black)
		board.cells[White.backRank()][col] = newPiece(backRankOrder[col], White)
		board.cells[Black.pawnHomeRow()][col] = newPiece(Pawn, Black)
		board.cells[White.pawnHomeRow()][col] = newPiece(Pawn, White)
	}
	return board
}

func newEmptyBoard() *Board {
	return &Board{}
}

func (b *Board) at(pos Position) *Piece {
	if !pos.InBounds() {
		return nil
	}
	return b.cells[pos.Row][pos.Col]
}

func (b *Board) set(pos Position, p *Piece) {
	b.cells[pos.Row][pos.Col] = p
}

// PieceAt returns a copy of the piece on pos. Out-of-bounds squares are
// reported as empty.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	p := b.at(pos)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// ApplyMove performs m without any legality check. Castling is recognised
// as a king moving two columns; promotion as a pawn landing on the far rank.
func (b *Board) ApplyMove(m Move) {
	piece := b.at(m.From)
	if piece == nil || !m.To.InBounds() {
		return
	}

	if piece.kind == King && abs(m.To.Col-m.From.Col) == 2 {
		rookFrom, rookTo := Position{Row: m.From.Row, Col: 7}, Position{Row: m.From.Row, Col: 5}
		if m.To.Col < m.From.Col {
			rookFrom, rookTo = Position{Row: m.From.Row, Col: 0}, Position{Row: m.From.Row, Col: 3}
		}
		if rook := b.at(rookFrom); rook != nil {
			b.set(rookTo, rook)
			b.set(rookFrom, nil)
			rook.hasMoved = true
		}
	}

	b.set(m.To, piece)
	b.set(m.From, nil)
	piece.hasMoved = true

	if piece.kind == Pawn && m.To.Row == piece.color.promotionRow() {
		kind := m.Promotion
		if kind == "" {
			kind = Queen
		}
		promoted := newPiece(kind, piece.color)
		promoted.hasMoved = true
		b.set(m.To, promoted)
	}
}

// Clone returns a deep copy; no piece is shared with b.
func (b *Board) Clone() *Board {
	clone := newEmptyBoard()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil {
				copied := *p
				clone.cells[row][col] = &copied
			}
		}
	}
	return clone
}

func (b *Board) FindKing(color Color) (Position, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil && p.kind == King && p.color == color {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// IsKingInCheck reports whether color's king is attacked. A board without
// that king is never in check.
func (b *Board) IsKingInCheck(color Color) bool {
	pos, ok := b.FindKing(color)
	if !ok {
		return false
	}
	return b.IsSquareAttacked(pos, color.Opposite())
}

// IsSquareAttacked answers from occupancy alone whether any piece of
// attacker reaches target. It must not call into legal move generation.
func (b *Board) IsSquareAttacked(target Position, attacker Color) bool {
	if !target.InBounds() {
		return false
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == nil || p.color != attacker {
				continue
			}
			if b.pieceAttacks(p, Position{Row: row, Col: col}, target) {
				return true
			}
		}
	}
	return false
}

func (b *Board) pieceAttacks(p *Piece, from, target Position) bool {
	dRow, dCol := target.Row-from.Row, target.Col-from.Col
	if dRow == 0 && dCol == 0 {
		return false
	}

	switch p.kind {
	case Pawn:
		return dRow == p.color.pawnDirection() && abs(dCol) == 1
	case Knight:
		return matchesOffset(knightDirs, dRow, dCol)
	case King:
		return matchesOffset(kingDirs, dRow, dCol)
	case Bishop:
		return abs(dRow) == abs(dCol) && b.rayClear(from, target)
	case Rook:
		return (dRow == 0 || dCol == 0) && b.rayClear(from, target)
	case Queen:
		return (abs(dRow) == abs(dCol) || dRow == 0 || dCol == 0) && b.rayClear(from, target)
	}
	return false
}

func matchesOffset(dirs []Position, dRow, dCol int) bool {
	for _, dir := range dirs {
		if dir.Row == dRow && dir.Col == dCol {
			return true
		}
	}
	return false
}

// rayClear walks from one aligned square towards another and reports whether
// every cell strictly between them is empty.
func (b *Board) rayClear(from, target Position) bool {
	stepRow, stepCol := sign(target.Row-from.Row), sign(target.Col-from.Col)
	for pos := from.offset(stepRow, stepCol); pos != target; pos = pos.offset(stepRow, stepCol) {
		if b.at(pos) != nil {
			return false
		}
	}
	return true
}

// PositionsOf lists the squares holding color's pieces in row-major order.
func (b *Board) PositionsOf(color Color) []Position {
	positions := []Position{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil && p.color == color {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// String draws the board one rank per line, row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil {
				sb.WriteRune(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
