package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/fatih/color"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
)

type settings struct {
	Seed  int64
	Plies int
	Quiet bool
	Guard bool
}

type result struct {
	Plies      int
	Captures   int
	Checks     int
	Promotions int
	Over       bool
	Outcome    string
}

// selfPlay plays one game of uniformly random moves and writes each position
// to out unless quiet is set.
func selfPlay(s settings, out io.Writer) (result, error) {
	rng := rand.New(rand.NewSource(s.Seed))
	g := game.New(
		game.WithGuard(s.Guard),
		game.WithPromotion(func(board.Square, board.Color) board.PieceType {
			return board.PromotionTypes[rng.Intn(len(board.PromotionTypes))]
		}),
	)

	var res result
	for res.Plies < s.Plies {
		moves, err := g.LegalMoves()
		if err != nil {
			return res, fmt.Errorf("ply %d: %w", res.Plies+1, err)
		}
		if len(moves) == 0 {
			// Stalemate is not detected by the engine.
			res.Outcome = fmt.Sprintf("%s has no move", g.Turn())
			return res, nil
		}

		mover := g.Turn()
		m := moves[rng.Intn(len(moves))]
		done, err := step(g, m, &res)
		if err != nil {
			return res, err
		}

		if !s.Quiet {
			fmt.Fprintf(out, "%d. %s %s\n", res.Plies, mover, m)
			fmt.Fprint(out, drawBoard(g.Board(), m))
		}
		if done {
			return res, nil
		}
	}
	res.Outcome = "ply limit reached"
	return res, nil
}

// step plays m and records it in res. It reports whether the game is over.
// A Play error ends the game only when the controller stopped it, as after a
// king capture with the guard off.
func step(g *game.Game, m board.Move, res *result) (bool, error) {
	events, err := g.Play(m)
	if err != nil && !g.Over() {
		return false, fmt.Errorf("ply %d: %w", res.Plies+1, err)
	}
	res.Plies++
	tally(res, events)

	if g.Over() {
		res.Over = true
		res.Outcome = g.Result()
		return true, nil
	}
	return false, nil
}

func tally(res *result, events []game.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case game.EventMoved:
			if e.Captured != board.NoPiece {
				res.Captures++
			}
			if e.Promotion.IsPromotion() {
				res.Promotions++
			}
		case game.EventCheck:
			res.Checks++
		}
	}
}

var (
	lightSquare = color.New(color.FgBlack, color.BgHiWhite)
	darkSquare  = color.New(color.FgBlack, color.BgGreen)
	lastSquare  = color.New(color.FgBlack, color.BgYellow)
	coordText   = color.New(color.Bold)
)

// drawBoard renders b with rank 8 at the top and the squares of last highlighted.
func drawBoard(b *board.Board, last board.Move) string {
	var sb strings.Builder
	for row := 0; row < board.Size; row++ {
		sb.WriteString(coordText.Sprintf(" %d ", board.Size-row))
		for col := 0; col < board.Size; col++ {
			sq := board.NewSquare(row, col)
			p, _ := b.PieceAt(sq)

			cell := lightSquare
			switch {
			case sq == last.From || sq == last.To:
				cell = lastSquare
			case (row+col)%2 == 1:
				cell = darkSquare
			}
			sb.WriteString(cell.Sprintf(" %s ", p))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(coordText.Sprint("    a  b  c  d  e  f  g  h "))
	sb.WriteString("\n\n")
	return sb.String()
}
