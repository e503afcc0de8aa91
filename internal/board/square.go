// Package board implements the chess board and the rules that govern it:
// move legality, check detection and checkmate search.
package board

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 8

// Square identifies a board square by row and column.
// Row 0 is Black's back rank (rank 8) and row 7 is White's (rank 1).
// Column 0 is the a-file.
type Square struct {
	Row, Col int
}

// NoSquare is the sentinel for "no square".
var NoSquare = Square{Row: -1, Col: -1}

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square{Row: row, Col: col}
}

// IsValid returns true if both coordinates are on the board.
func (sq Square) IsValid() bool {
	return sq.Row >= 0 && sq.Row < Size && sq.Col >= 0 && sq.Col < Size
}

// Offset returns the square displaced by dr rows and dc columns.
// The result may be off the board.
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

// String returns the square name (e.g., "e4"), used for logs and debugging.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col, Size-sq.Row)
}

// AllSquares returns every square in row-major order starting at row 0.
func AllSquares() []Square {
	squares := make([]Square, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			squares = append(squares, Square{Row: row, Col: col})
		}
	}
	return squares
}
