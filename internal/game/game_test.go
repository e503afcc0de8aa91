package game

import (
	"errors"
	"testing"

	"github.com/hailam/chessrules/internal/board"
)

func sq(name string) board.Square {
	return board.NewSquare(int('8'-name[1]), int(name[0]-'a'))
}

func mv(s string) board.Move {
	return board.NewMove(sq(s[:2]), sq(s[2:]))
}

// setup builds a game from square names to pieces.
func setup(t *testing.T, toMove board.Color, pieces map[string]board.Piece, opts ...Option) *Game {
	t.Helper()
	b := board.NewEmpty()
	for name, p := range pieces {
		if err := b.SetPieceAt(sq(name), p); err != nil {
			t.Fatal(err)
		}
	}
	return New(append([]Option{WithBoard(b, toMove)}, opts...)...)
}

func play(t *testing.T, g *Game, moves ...string) []Event {
	t.Helper()
	var events []Event
	for _, s := range moves {
		var err error
		events, err = g.Play(mv(s))
		if err != nil {
			t.Fatalf("Play(%s): %v", s, err)
		}
	}
	return events
}

func TestNewGame(t *testing.T) {
	g := New()
	if g.Turn() != board.White {
		t.Errorf("Turn = %v, want White", g.Turn())
	}
	if g.Phase() != PhaseNoSelection {
		t.Errorf("Phase = %v, want NoSelection", g.Phase())
	}
	if g.Status() != board.StatusOngoing || g.Over() || g.Result() != "" {
		t.Errorf("unexpected state: status=%v over=%v result=%q", g.Status(), g.Over(), g.Result())
	}
	if g.LastMove() != board.NoMove {
		t.Errorf("LastMove = %v, want NoMove", g.LastMove())
	}
	if !g.Guard() {
		t.Error("guard should default to on")
	}

	moves, err := g.LegalMoves()
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 20 {
		t.Errorf("LegalMoves = %d, want 20", len(moves))
	}
}

func TestClickFlow(t *testing.T) {
	g := New()

	events := g.Click(sq("e2"))
	if len(events) != 1 {
		t.Fatalf("Click(e2) events = %v", events)
	}
	sel, ok := events[0].(EventSelected)
	if !ok {
		t.Fatalf("Click(e2) event = %T, want EventSelected", events[0])
	}
	want := []board.Square{sq("e4"), sq("e3")}
	if len(sel.Targets) != len(want) || sel.Targets[0] != want[0] || sel.Targets[1] != want[1] {
		t.Errorf("Targets = %v, want %v", sel.Targets, want)
	}
	if g.Phase() != PhasePieceSelected || g.Selected() != sq("e2") {
		t.Errorf("Phase = %v, Selected = %v", g.Phase(), g.Selected())
	}

	events = g.Click(sq("e4"))
	if len(events) != 1 {
		t.Fatalf("Click(e4) events = %v", events)
	}
	moved, ok := events[0].(EventMoved)
	if !ok {
		t.Fatalf("Click(e4) event = %T, want EventMoved", events[0])
	}
	if moved.Move != mv("e2e4") || moved.Piece != board.WhitePawn || moved.Captured != board.NoPiece {
		t.Errorf("EventMoved = %+v", moved)
	}
	if g.Turn() != board.Black {
		t.Errorf("Turn = %v, want Black", g.Turn())
	}
	if g.Phase() != PhaseCheckEvaluated {
		t.Errorf("Phase = %v, want CheckEvaluated", g.Phase())
	}
	if g.Selected() != board.NoSquare || g.Targets() != nil {
		t.Error("selection should be cleared after a move")
	}
	if g.LastMove() != mv("e2e4") || len(g.History()) != 1 {
		t.Errorf("LastMove = %v, History = %v", g.LastMove(), g.History())
	}
	if p, _ := g.Board().PieceAt(sq("e4")); p != board.WhitePawn {
		t.Errorf("e4 = %v, want WhitePawn", p)
	}
}

func TestClickSelection(t *testing.T) {
	tests := []struct {
		name   string
		clicks []string
		want   []Event
		phase  Phase
	}{
		{
			name:   "empty square",
			clicks: []string{"e4"},
			want:   nil,
			phase:  PhaseNoSelection,
		},
		{
			name:   "opponent piece",
			clicks: []string{"e7"},
			want:   []Event{EventInvalid{From: sq("e7"), To: sq("e7"), Reason: ReasonNotYourTurn}},
			phase:  PhaseNoSelection,
		},
		{
			name:   "same square deselects",
			clicks: []string{"e2", "e2"},
			want:   []Event{EventDeselected{Square: sq("e2")}},
			phase:  PhaseNoSelection,
		},
		{
			name:   "invalid target",
			clicks: []string{"e2", "e5"},
			want: []Event{
				EventInvalid{From: sq("e2"), To: sq("e5"), Reason: ReasonInvalidPieceMovement},
				EventDeselected{Square: sq("e2")},
			},
			phase: PhaseNoSelection,
		},
		{
			name:   "blocked rook",
			clicks: []string{"a1", "a3"},
			want: []Event{
				EventInvalid{From: sq("a1"), To: sq("a3"), Reason: ReasonInvalidPieceMovement},
				EventDeselected{Square: sq("a1")},
			},
			phase: PhaseNoSelection,
		},
		{
			name:   "opponent piece with selection",
			clicks: []string{"d1", "d8"},
			want: []Event{
				EventInvalid{From: sq("d1"), To: sq("d8"), Reason: ReasonInvalidPieceMovement},
				EventDeselected{Square: sq("d1")},
			},
			phase: PhaseNoSelection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			var got []Event
			for _, c := range tt.clicks {
				got = g.Click(sq(c))
			}
			if len(got) != len(tt.want) {
				t.Fatalf("events = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("event[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if g.Phase() != tt.phase {
				t.Errorf("Phase = %v, want %v", g.Phase(), tt.phase)
			}
			if g.Turn() != board.White {
				t.Error("turn changed without a move")
			}
		})
	}
}

func TestClickReselect(t *testing.T) {
	g := New()
	g.Click(sq("e2"))
	events := g.Click(sq("g1"))
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	sel, ok := events[0].(EventSelected)
	if !ok || sel.Square != sq("g1") {
		t.Fatalf("event = %+v, want EventSelected g1", events[0])
	}
	if len(sel.Targets) != 2 {
		t.Errorf("knight targets = %v, want 2", sel.Targets)
	}
	if g.Selected() != sq("g1") {
		t.Errorf("Selected = %v, want g1", g.Selected())
	}
}

func TestClickOffBoard(t *testing.T) {
	g := New()
	if events := g.Click(board.NoSquare); events != nil {
		t.Errorf("off-board click with no selection = %v", events)
	}
	g.Click(sq("b1"))
	events := g.Click(board.NewSquare(9, 9))
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	if _, ok := events[0].(EventDeselected); !ok {
		t.Errorf("event = %T, want EventDeselected", events[0])
	}
}

func TestGuard(t *testing.T) {
	// Bishop on e2 is pinned against the king by the rook on e8.
	pieces := map[string]board.Piece{
		"e1": board.WhiteKing,
		"e2": board.WhiteBishop,
		"e8": board.BlackRook,
		"a8": board.BlackKing,
	}

	t.Run("on", func(t *testing.T) {
		g := setup(t, board.White, pieces)
		events := g.Click(sq("e2"))
		sel := events[0].(EventSelected)
		if len(sel.Targets) != 0 {
			t.Errorf("pinned bishop targets = %v, want none", sel.Targets)
		}

		events = g.Click(sq("d3"))
		inv, ok := events[0].(EventInvalid)
		if !ok || inv.Reason != ReasonWouldLeaveKingInCheck {
			t.Errorf("event = %+v, want ReasonWouldLeaveKingInCheck", events[0])
		}

		_, err := g.Play(mv("e2d3"))
		if !errors.Is(err, ErrKingLeftInCheck) || !errors.Is(err, board.ErrIllegalMove) {
			t.Errorf("Play error = %v, want ErrKingLeftInCheck", err)
		}
		if g.Turn() != board.White || len(g.History()) != 0 {
			t.Error("refused move changed the game")
		}
	})

	t.Run("off", func(t *testing.T) {
		g := setup(t, board.White, pieces, WithGuard(false))
		events := g.Click(sq("e2"))
		sel := events[0].(EventSelected)
		if len(sel.Targets) == 0 {
			t.Fatal("unguarded bishop should have targets")
		}

		play(t, g, "e2d3")

		// Black now takes the king; the next evaluation cannot find it.
		events, err := g.Play(mv("e8e1"))
		if !errors.Is(err, board.ErrInvariantViolation) {
			t.Fatalf("Play error = %v, want ErrInvariantViolation", err)
		}
		if len(events) != 1 {
			t.Errorf("events = %v, want only EventMoved", events)
		}
		if !g.Over() {
			t.Error("engine error should stop the game")
		}
		if _, err := g.Play(mv("a8a7")); !errors.Is(err, ErrGameOver) {
			t.Errorf("Play after stop = %v, want ErrGameOver", err)
		}
	})
}

func TestSetGuard(t *testing.T) {
	g := setup(t, board.White, map[string]board.Piece{
		"e1": board.WhiteKing,
		"e2": board.WhiteBishop,
		"e8": board.BlackRook,
		"a8": board.BlackKing,
	})
	g.Click(sq("e2"))
	if g.Phase() != PhasePieceSelected {
		t.Fatalf("Phase = %v, want PieceSelected", g.Phase())
	}

	g.SetGuard(false)
	if g.Guard() || g.Phase() != PhaseNoSelection || g.Selected() != board.NoSquare {
		t.Fatalf("SetGuard(false) kept the selection: phase=%v selected=%v", g.Phase(), g.Selected())
	}

	events := g.Click(sq("e2"))
	if sel := events[0].(EventSelected); len(sel.Targets) == 0 {
		t.Error("unguarded bishop should have targets")
	}
	if _, err := g.Play(mv("e2d3")); err != nil {
		t.Errorf("Play with guard off: %v", err)
	}
}

func TestPlayRejects(t *testing.T) {
	tests := []struct {
		name string
		move string
		want error
	}{
		{"empty origin", "e4e5", ErrNotYourTurn},
		{"opponent piece", "e7e5", ErrNotYourTurn},
		{"illegal geometry", "e2e5", board.ErrIllegalMove},
		{"own piece", "d1d2", board.ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			before := *g.Board()
			if _, err := g.Play(mv(tt.move)); !errors.Is(err, tt.want) {
				t.Errorf("Play(%s) error = %v, want %v", tt.move, err, tt.want)
			}
			if *g.Board() != before || g.Turn() != board.White {
				t.Error("refused move changed the game")
			}
		})
	}
}

func TestCheck(t *testing.T) {
	g := setup(t, board.White, map[string]board.Piece{
		"e1": board.WhiteKing,
		"h1": board.WhiteRook,
		"e8": board.BlackKing,
	})
	events := play(t, g, "h1h8")
	if len(events) != 2 {
		t.Fatalf("events = %v, want EventMoved and EventCheck", events)
	}
	if ev, ok := events[1].(EventCheck); !ok || ev.Color != board.Black {
		t.Errorf("event = %+v, want EventCheck{Black}", events[1])
	}
	if g.Status() != board.StatusCheck || g.Over() {
		t.Errorf("Status = %v, Over = %v", g.Status(), g.Over())
	}
}

func TestFoolsMate(t *testing.T) {
	g := New()
	events := play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	if len(events) != 3 {
		t.Fatalf("events = %v", events)
	}
	if ev, ok := events[1].(EventCheck); !ok || ev.Color != board.White {
		t.Errorf("event = %+v, want EventCheck{White}", events[1])
	}
	if ev, ok := events[2].(EventCheckmate); !ok || ev.Winner != board.Black {
		t.Errorf("event = %+v, want EventCheckmate{Black}", events[2])
	}
	if !g.Over() || g.Status() != board.StatusCheckmate {
		t.Errorf("Over = %v, Status = %v", g.Over(), g.Status())
	}
	if g.Result() != "Checkmate! Black wins!" {
		t.Errorf("Result = %q", g.Result())
	}

	if events := g.Click(sq("e1")); events != nil {
		t.Errorf("click after game over = %v", events)
	}
	if _, err := g.Play(mv("a2a3")); !errors.Is(err, ErrGameOver) {
		t.Errorf("Play after mate = %v, want ErrGameOver", err)
	}
	if moves, _ := g.LegalMoves(); moves != nil {
		t.Errorf("LegalMoves after mate = %v", moves)
	}

	g.Reset()
	if g.Over() || g.Turn() != board.White || len(g.History()) != 0 || *g.Board() != *board.New() {
		t.Error("Reset did not restore the starting position")
	}
}

func TestPromotion(t *testing.T) {
	pieces := map[string]board.Piece{
		"e1": board.WhiteKing,
		"h8": board.BlackKing,
		"a7": board.WhitePawn,
	}

	t.Run("default queen", func(t *testing.T) {
		g := setup(t, board.White, pieces)
		events := play(t, g, "a7a8")
		moved := events[0].(EventMoved)
		if moved.Promotion != board.Queen {
			t.Errorf("Promotion = %v, want Queen", moved.Promotion)
		}
		// The new queen checks h8 along the back rank.
		if g.Status() != board.StatusCheck {
			t.Errorf("Status = %v, want Check", g.Status())
		}
	})

	t.Run("chooser", func(t *testing.T) {
		g := setup(t, board.White, pieces, WithPromotion(func(board.Square, board.Color) board.PieceType {
			return board.Knight
		}))
		events := play(t, g, "a7a8")
		if moved := events[0].(EventMoved); moved.Promotion != board.Knight {
			t.Errorf("Promotion = %v, want Knight", moved.Promotion)
		}

		g.Reset()
		g.SetPromotion(func(board.Square, board.Color) board.PieceType { return board.Rook })
		events = play(t, g, "a7a8")
		if moved := events[0].(EventMoved); moved.Promotion != board.Rook {
			t.Errorf("Promotion = %v, want Rook", moved.Promotion)
		}
	})
}

func TestStartInCheckmate(t *testing.T) {
	g := setup(t, board.White, map[string]board.Piece{
		"h1": board.WhiteKing,
		"h2": board.BlackQueen,
		"g3": board.BlackKing,
	})
	if !g.Over() || g.Status() != board.StatusCheckmate {
		t.Errorf("Over = %v, Status = %v", g.Over(), g.Status())
	}
}

func TestInvalidMoveReasonString(t *testing.T) {
	if ReasonNotYourTurn.String() != "Not your turn" {
		t.Errorf("String = %q", ReasonNotYourTurn.String())
	}
	if InvalidMoveReason(99).String() != "Invalid move" {
		t.Errorf("unknown reason String = %q", InvalidMoveReason(99).String())
	}
}
