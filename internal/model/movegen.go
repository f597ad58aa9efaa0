package model

// pseudoMoves lists the moves of the piece on from that follow its movement
// pattern, ignoring the safety of its own king.
func (b *Board) pseudoMoves(from Position) []Move {
	piece := b.at(from)
	if piece == nil {
		return []Move{}
	}
	switch piece.kind {
	case Pawn:
		return b.pawnMoves(piece, from)
	case Knight:
		return b.stepMoves(piece, from, knightDirs)
	case Bishop:
		return b.slideMoves(piece, from, bishopDirs)
	case Rook:
		return b.slideMoves(piece, from, rookDirs)
	case Queen:
		return b.slideMoves(piece, from, queenDirs)
	case King:
		return append(b.stepMoves(piece, from, kingDirs), b.castleMoves(piece, from)...)
	}
	return []Move{}
}

func (b *Board) pawnMoves(piece *Piece, from Position) []Move {
	pawnMoves := []Move{}
	dir := piece.color.pawnDirection()

	// forward one, then two from the home row
	one := from.offset(dir, 0)
	if one.InBounds() && b.at(one) == nil {
		pawnMoves = append(pawnMoves, Move{From: from, To: one})
		two := from.offset(2*dir, 0)
		if from.Row == piece.color.pawnHomeRow() && two.InBounds() && b.at(two) == nil {
			pawnMoves = append(pawnMoves, Move{From: from, To: two})
		}
	}

	for _, dCol := range []int{-1, 1} {
		target := from.offset(dir, dCol)
		if other := b.at(target); other != nil && other.color != piece.color {
			pawnMoves = append(pawnMoves, Move{From: from, To: target})
		}
	}
	return pawnMoves
}

// stepMoves covers knights and the king's single steps: every in-bounds
// offset not holding a piece of the mover's color.
func (b *Board) stepMoves(piece *Piece, from Position, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		target := from.offset(dir.Row, dir.Col)
		if !target.InBounds() {
			continue
		}
		if other := b.at(target); other == nil || other.color != piece.color {
			moves = append(moves, Move{From: from, To: target})
		}
	}
	return moves
}

func (b *Board) slideMoves(piece *Piece, from Position, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		target := from.offset(dir.Row, dir.Col)
		for target.InBounds() {
			other := b.at(target)
			if other == nil {
				moves = append(moves, Move{From: from, To: target})
			} else {
				if other.color != piece.color {
					moves = append(moves, Move{From: from, To: target})
				}
				break
			}
			target = target.offset(dir.Row, dir.Col)
		}
	}
	return moves
}

// castleMoves emits king-side then queen-side castling as a two-column king
// move. The rook is relocated by ApplyMove.
func (b *Board) castleMoves(king *Piece, from Position) []Move {
	castles := []Move{}
	if king.hasMoved || from != (Position{Row: king.color.backRank(), Col: 4}) || b.IsKingInCheck(king.color) {
		return castles
	}
	for _, rookCol := range []int{7, 0} {
		if b.canCastle(king, from, rookCol) {
			step := sign(rookCol - from.Col)
			castles = append(castles, Move{From: from, To: from.offset(0, 2*step)})
		}
	}
	return castles
}

func (b *Board) canCastle(king *Piece, from Position, rookCol int) bool {
	rook := b.at(Position{Row: from.Row, Col: rookCol})
	if rook == nil || rook.kind != Rook || rook.color != king.color || rook.hasMoved {
		return false
	}
	step := sign(rookCol - from.Col)
	for col := from.Col + step; col != rookCol; col += step {
		if b.at(Position{Row: from.Row, Col: col}) != nil {
			return false
		}
	}
	enemy := king.color.Opposite()
	return !b.IsSquareAttacked(from.offset(0, step), enemy) &&
		!b.IsSquareAttacked(from.offset(0, 2*step), enemy)
}

// trialBoard is a private deep copy used to test one hypothetical move. It
// is built only by newTrialBoard and is spent by the check that follows.
type trialBoard struct {
	board *Board
}

func newTrialBoard(b *Board) *trialBoard {
	return &trialBoard{board: b.Clone()}
}

// leavesKingSafe applies m and reports whether mover's king is out of check.
// The trial board is unusable afterwards.
func (t *trialBoard) leavesKingSafe(m Move, mover Color) bool {
	board := t.board
	t.board = nil
	board.ApplyMove(m)
	return !board.IsKingInCheck(mover)
}

// IsLegal reports whether playing m leaves mover's king safe. It does not
// check that m follows a movement pattern.
func IsLegal(b *Board, m Move, mover Color) bool {
	return newTrialBoard(b).leavesKingSafe(m, mover)
}

// LegalMovesForPiece returns the legal moves of the piece on from, whoever's
// turn it is. An empty or out-of-bounds square has none.
func LegalMovesForPiece(b *Board, from Position) []Move {
	piece := b.at(from)
	if piece == nil {
		return []Move{}
	}
	legalMoves := []Move{}
	for _, move := range b.pseudoMoves(from) {
		if IsLegal(b, move, piece.color) {
			legalMoves = append(legalMoves, move)
		}
	}
	return legalMoves
}

// LegalMoves returns every legal move for color, scanning source squares in
// row-major order.
func LegalMoves(b *Board, color Color) []Move {
	legalMoves := []Move{}
	for _, pos := range b.PositionsOf(color) {
		legalMoves = append(legalMoves, LegalMovesForPiece(b, pos)...)
	}
	return legalMoves
}

func hasLegalMove(b *Board, color Color) bool {
	for _, pos := range b.PositionsOf(color) {
		if len(LegalMovesForPiece(b, pos)) > 0 {
			return true
		}
	}
	return false
}
