package ui

import (
	"testing"

	"github.com/hailam/chessrules/internal/board"
)

func TestScreenToSquare(t *testing.T) {
	tests := []struct {
		name    string
		flipped bool
		x, y    int
		want    board.Square
	}{
		{"top left", false, 0, 0, board.NewSquare(0, 0)},
		{"bottom right", false, BoardSize - 1, BoardSize - 1, board.NewSquare(7, 7)},
		{"inside e2", false, 4*SquareSize + 10, 6*SquareSize + 70, board.NewSquare(6, 4)},
		{"flipped top left", true, 0, 0, board.NewSquare(7, 7)},
		{"flipped bottom right", true, BoardSize - 1, BoardSize - 1, board.NewSquare(0, 0)},
		{"right of board", false, BoardSize, 10, board.NoSquare},
		{"below board", false, 10, BoardSize, board.NoSquare},
		{"negative", false, -1, 10, board.NoSquare},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := geometry{boardSize: BoardSize, squareSize: SquareSize, flipped: tt.flipped}
			if got := g.ScreenToSquare(tt.x, tt.y); got != tt.want {
				t.Errorf("ScreenToSquare(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSquareToScreenRoundTrip(t *testing.T) {
	for _, flipped := range []bool{false, true} {
		g := geometry{boardSize: BoardSize, squareSize: SquareSize, flipped: flipped}
		for _, sq := range board.AllSquares() {
			x, y := g.SquareToScreen(sq)
			if x < 0 || y < 0 || x >= BoardSize || y >= BoardSize {
				t.Fatalf("flipped=%v: %v drawn off the board at (%d, %d)", flipped, sq, x, y)
			}
			if got := g.ScreenToSquare(x+SquareSize/2, y+SquareSize/2); got != sq {
				t.Errorf("flipped=%v: round trip of %v gave %v", flipped, sq, got)
			}
		}
	}
}

func TestWhiteAtBottom(t *testing.T) {
	g := geometry{boardSize: BoardSize, squareSize: SquareSize}
	_, y := g.SquareToScreen(board.NewSquare(7, 4)) // e1
	if y != BoardSize-SquareSize {
		t.Errorf("e1 drawn at y=%d, want bottom row", y)
	}

	g.flipped = true
	_, y = g.SquareToScreen(board.NewSquare(7, 4))
	if y != 0 {
		t.Errorf("flipped: e1 drawn at y=%d, want top row", y)
	}
}

func TestInRect(t *testing.T) {
	tests := []struct {
		px, py int
		want   bool
	}{
		{10, 10, true},
		{19, 29, true},
		{20, 10, false},
		{10, 30, false},
		{9, 10, false},
	}
	for _, tt := range tests {
		if got := inRect(tt.px, tt.py, 10, 10, 10, 20); got != tt.want {
			t.Errorf("inRect(%d, %d) = %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}
}
