package model

import (
	"encoding/json"
	"unicode"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Notation returns the SAN letter of the piece type; pawns have none.
func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

func (p PieceType) symbol() rune {
	switch p {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Pawn:
		return 'p'
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to p.
func (p PieceType) IsPromotionChoice() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// Piece is owned by exactly one board cell. Kind and color never change;
// hasMoved is only written by Board.ApplyMove.
type Piece struct {
	kind     PieceType
	color    Color
	hasMoved bool
}

func newPiece(kind PieceType, color Color) *Piece {
	return &Piece{kind: kind, color: color}
}

func (p Piece) Kind() PieceType { return p.kind }
func (p Piece) Color() Color    { return p.color }
func (p Piece) HasMoved() bool  { return p.hasMoved }

// Symbol is the diagram letter: uppercase for white, lowercase for black.
func (p Piece) Symbol() rune {
	r := p.kind.symbol()
	if p.color == White {
		return unicode.ToUpper(r)
	}
	return r
}

type pieceJSON struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

func (p Piece) MarshalJSON() ([]byte, error) {
	return json.Marshal(pieceJSON{Type: p.kind, Color: p.color, HasMoved: p.hasMoved})
}
