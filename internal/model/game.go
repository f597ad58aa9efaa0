package model

// Game is one chess game: the board, whose turn it is and the moves played.
// It is not safe for concurrent use; callers serialize access.
type Game struct {
	board   *Board
	toMove  Color
	history []Move
}

func NewGame() *Game {
	return newGameFromBoard(NewBoard(), White)
}

func newGameFromBoard(board *Board, toMove Color) *Game {
	return &Game{
		board:   board,
		toMove:  toMove,
		history: make([]Move, 0),
	}
}

func (g *Game) ToMove() Color {
	return g.toMove
}

// History returns the accepted moves, oldest first. The slice is a copy.
func (g *Game) History() []Move {
	history := make([]Move, len(g.history))
	copy(history, g.history)
	return history
}

func (g *Game) PieceAt(pos Position) (Piece, bool) {
	return g.board.PieceAt(pos)
}

// LegalMovesFrom returns the legal moves of the piece on pos regardless of
// whose turn it is.
func (g *Game) LegalMovesFrom(pos Position) []Move {
	return LegalMovesForPiece(g.board, pos)
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []Move {
	return LegalMoves(g.board, g.toMove)
}

// MakeMove plays m for the side to move. On error nothing changes.
func (g *Game) MakeMove(m Move) error {
	if err := g.validateMove(m); err != nil {
		return &MoveError{Move: m, Ply: len(g.history) + 1, Err: err}
	}

	if !promotes(g.board.at(m.From), m) {
		m.Promotion = ""
	}

	g.board.ApplyMove(m)
	g.history = append(g.history, m)
	g.switchTurn()
	return nil
}

// AttemptMove is MakeMove reduced to success or failure.
func (g *Game) AttemptMove(m Move) bool {
	return g.MakeMove(m) == nil
}

func (g *Game) validateMove(m Move) error {
	piece := g.board.at(m.From)
	if piece == nil {
		return ErrNoPiece
	}
	if piece.color != g.toMove {
		return ErrNotYourTurn
	}
	for _, legalMove := range LegalMovesForPiece(g.board, m.From) {
		if !legalMove.sameSquares(m) {
			continue
		}
		// The choice only matters when the move promotes; otherwise it is dropped.
		if promotes(piece, m) && m.Promotion != "" && !m.Promotion.IsPromotionChoice() {
			return ErrInvalidPromotion
		}
		return nil
	}
	return ErrIllegalMove
}

func promotes(piece *Piece, m Move) bool {
	return piece.kind == Pawn && m.To.Row == piece.color.promotionRow()
}

func (g *Game) switchTurn() {
	g.toMove = g.toMove.Opposite()
}

func (g *Game) IsInCheck(color Color) bool {
	return g.board.IsKingInCheck(color)
}

func (g *Game) IsCheckmate(color Color) bool {
	return g.IsInCheck(color) && !hasLegalMove(g.board, color)
}

func (g *Game) IsStalemate(color Color) bool {
	return !g.IsInCheck(color) && !hasLegalMove(g.board, color)
}
