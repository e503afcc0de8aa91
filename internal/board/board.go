package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned when a square lies outside the board.
	ErrOutOfRange = errors.New("square out of range")

	// ErrInvariantViolation is returned when the board is in a state legal play
	// cannot produce, such as a side without a king.
	ErrInvariantViolation = errors.New("board invariant violation")

	// ErrIllegalMove is returned when a move is applied that the rules reject.
	ErrIllegalMove = errors.New("illegal move")
)

// backRank is the piece order on each side's first rank, a-file to h-file.
var backRank = [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board holds the 8x8 grid of pieces.
// Board is a plain value: two boards with the same pieces compare equal with ==.
type Board struct {
	squares [Size][Size]Piece
}

// New creates a board with the standard starting arrangement.
func New() *Board {
	b := &Board{}
	for col := 0; col < Size; col++ {
		b.squares[0][col] = NewPiece(backRank[col], Black)
		b.squares[1][col] = BlackPawn
		b.squares[6][col] = WhitePawn
		b.squares[7][col] = NewPiece(backRank[col], White)
	}
	return b
}

// NewEmpty creates a board with no pieces.
func NewEmpty() *Board {
	return &Board{}
}

// Clone creates a copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if !sq.IsValid() {
		return NoPiece, fmt.Errorf("%w: %d,%d", ErrOutOfRange, sq.Row, sq.Col)
	}
	return b.at(sq), nil
}

// SetPieceAt places a piece on a square. NoPiece clears the square.
func (b *Board) SetPieceAt(sq Square, p Piece) error {
	if !sq.IsValid() {
		return fmt.Errorf("%w: %d,%d", ErrOutOfRange, sq.Row, sq.Col)
	}
	b.set(sq, p)
	return nil
}

// IsEmpty returns true if the square is on the board and holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.IsValid() && b.at(sq) == NoPiece
}

// FindKing returns the square of the given color's king.
func (b *Board) FindKing(c Color) (Square, error) {
	if c >= NoColor {
		return NoSquare, fmt.Errorf("%w: invalid color %d", ErrInvariantViolation, c)
	}
	king := NewPiece(King, c)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.squares[row][col] == king {
				return Square{Row: row, Col: col}, nil
			}
		}
	}
	return NoSquare, fmt.Errorf("%w: no %s king on the board", ErrInvariantViolation, c)
}

// Squares returns every square holding a piece of the given color, in
// row-major order.
func (b *Board) Squares(c Color) []Square {
	var squares []Square
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b.squares[row][col]
			if p != NoPiece && p.Color() == c {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// at reads a square the caller has already validated.
func (b *Board) at(sq Square) Piece {
	return b.squares[sq.Row][sq.Col]
}

// set writes a square the caller has already validated.
func (b *Board) set(sq Square, p Piece) {
	b.squares[sq.Row][sq.Col] = p
}

// String returns a text diagram of the board with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < Size; row++ {
		fmt.Fprintf(&sb, "%d  ", Size-row)
		for col := 0; col < Size; col++ {
			p := b.squares[row][col]
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
