package board

import (
	"errors"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := New()

	tests := []struct {
		square string
		want   Piece
	}{
		{"a1", WhiteRook},
		{"b1", WhiteKnight},
		{"c1", WhiteBishop},
		{"d1", WhiteQueen},
		{"e1", WhiteKing},
		{"h1", WhiteRook},
		{"e2", WhitePawn},
		{"a8", BlackRook},
		{"d8", BlackQueen},
		{"e8", BlackKing},
		{"g8", BlackKnight},
		{"e7", BlackPawn},
		{"e4", NoPiece},
		{"d5", NoPiece},
	}
	for _, tt := range tests {
		got, err := b.PieceAt(sq(tt.square))
		if err != nil {
			t.Fatalf("PieceAt(%s): %v", tt.square, err)
		}
		if got != tt.want {
			t.Errorf("PieceAt(%s) = %v, want %v", tt.square, got, tt.want)
		}
	}

	if n := len(b.Squares(White)); n != 16 {
		t.Errorf("White has %d pieces, want 16", n)
	}
	if n := len(b.Squares(Black)); n != 16 {
		t.Errorf("Black has %d pieces, want 16", n)
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := NewPiece(pt, c)
			if p == NoPiece {
				t.Fatalf("NewPiece(%v, %v) = NoPiece", pt, c)
			}
			if p.Type() != pt || p.Color() != c {
				t.Errorf("NewPiece(%v, %v) decodes to (%v, %v)", pt, c, p.Type(), p.Color())
			}
		}
	}

	if NoPiece.Type() != NoPieceType || NoPiece.Color() != NoColor {
		t.Errorf("NoPiece decodes to (%v, %v)", NoPiece.Type(), NoPiece.Color())
	}
	if NewPiece(NoPieceType, White) != NoPiece {
		t.Error("NewPiece with NoPieceType should be NoPiece")
	}
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other should swap White and Black")
	}
	if WhiteKing.Symbol() != "♔" || BlackPawn.Symbol() != "♟" {
		t.Errorf("unexpected symbols %s %s", WhiteKing.Symbol(), BlackPawn.Symbol())
	}
}

func TestOutOfRange(t *testing.T) {
	b := New()
	bad := []Square{
		NewSquare(-1, 0),
		NewSquare(0, -1),
		NewSquare(8, 0),
		NewSquare(0, 8),
		NoSquare,
	}
	for _, s := range bad {
		if _, err := b.PieceAt(s); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PieceAt(%+v) error = %v, want ErrOutOfRange", s, err)
		}
		if err := b.SetPieceAt(s, WhiteQueen); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetPieceAt(%+v) error = %v, want ErrOutOfRange", s, err)
		}
		if b.IsEmpty(s) {
			t.Errorf("IsEmpty(%+v) should be false off the board", s)
		}
	}
	if *b != *New() {
		t.Error("out of range writes changed the board")
	}
}

func TestFindKing(t *testing.T) {
	b := New()
	got, err := b.FindKing(White)
	if err != nil {
		t.Fatalf("FindKing(White): %v", err)
	}
	if got != sq("e1") {
		t.Errorf("FindKing(White) = %v, want e1", got)
	}
	got, err = b.FindKing(Black)
	if err != nil {
		t.Fatalf("FindKing(Black): %v", err)
	}
	if got != sq("e8") {
		t.Errorf("FindKing(Black) = %v, want e8", got)
	}

	empty := NewEmpty()
	if _, err := empty.FindKing(White); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("FindKing on empty board error = %v, want ErrInvariantViolation", err)
	}
	if got, err := b.FindKing(NoColor); !errors.Is(err, ErrInvariantViolation) || got != NoSquare {
		t.Errorf("FindKing(NoColor) = %v, %v, want NoSquare, ErrInvariantViolation", got, err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	c := b.Clone()
	if *b != *c {
		t.Fatal("clone differs from original")
	}
	if err := c.SetPieceAt(sq("e4"), WhiteQueen); err != nil {
		t.Fatal(err)
	}
	if *b == *c {
		t.Error("writing to the clone changed the original")
	}
}
