// Package game drives a two-player game on top of the rules in package board.
//
// A Game turns square clicks into selections and committed moves, flips the
// turn, and evaluates check and checkmate for the side about to move. It
// reports what happened as a list of Events so that a front end can render,
// play sounds or print without knowing the rules.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hailam/chessrules/internal/board"
)

var (
	// ErrGameOver is returned when a move is played after checkmate or after
	// the game was stopped by an engine error.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn is returned when the origin holds no piece of the side to move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrKingLeftInCheck is returned when the self-check guard refuses a move.
	ErrKingLeftInCheck = fmt.Errorf("%w: king would be in check", board.ErrIllegalMove)
)

// Phase is the controller's position in the click flow.
type Phase int

const (
	// PhaseNoSelection waits for the side to move to pick a piece.
	PhaseNoSelection Phase = iota

	// PhasePieceSelected holds a selected piece and its highlighted targets.
	PhasePieceSelected

	// PhaseMoveCommitted is entered while a move is written to the board.
	PhaseMoveCommitted

	// PhaseCheckEvaluated is reached once the new side to move has been
	// checked for check and checkmate. The next click starts a new selection.
	PhaseCheckEvaluated
)

func (p Phase) String() string {
	switch p {
	case PhaseNoSelection:
		return "NoSelection"
	case PhasePieceSelected:
		return "PieceSelected"
	case PhaseMoveCommitted:
		return "MoveCommitted"
	case PhaseCheckEvaluated:
		return "CheckEvaluated"
	default:
		return ""
	}
}

// Option configures a Game.
type Option func(*Game)

// WithBoard starts the game from b with toMove to play. The board is copied.
func WithBoard(b *board.Board, toMove board.Color) Option {
	return func(g *Game) {
		g.start = *b
		g.startTurn = toMove
	}
}

// WithPromotion sets the chooser asked for the promotion piece.
// A nil chooser promotes to a Queen.
func WithPromotion(choose board.PromotionChooser) Option {
	return func(g *Game) {
		g.promote = choose
	}
}

// WithGuard turns the self-check guard on or off. With the guard on (the
// default) moves that leave the mover's own king attacked are refused.
func WithGuard(on bool) Option {
	return func(g *Game) {
		g.guard = on
	}
}

// Game is a single game between two players sharing one board.
// It is not safe for concurrent use.
type Game struct {
	board    *board.Board
	turn     board.Color
	phase    Phase
	selected board.Square
	targets  []board.Square
	status   board.Status
	over     bool
	result   string
	lastMove board.Move
	history  []board.MoveResult

	promote board.PromotionChooser
	guard   bool

	start     board.Board
	startTurn board.Color
}

// New creates a game from the standard starting arrangement with White to move.
func New(opts ...Option) *Game {
	g := &Game{
		start:     *board.New(),
		startTurn: board.White,
		guard:     true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset restores the starting position and clears all game state.
func (g *Game) Reset() {
	b := g.start
	g.board = &b
	g.turn = g.startTurn
	g.clearSelection()
	g.status = board.StatusOngoing
	g.over = false
	g.result = ""
	g.lastMove = board.NoMove
	g.history = nil

	// A custom start may already be check or mate.
	if _, err := g.evaluate(); err != nil {
		log.Printf("Warning: starting position: %v", err)
	}
}

// SetPromotion replaces the promotion chooser.
func (g *Game) SetPromotion(choose board.PromotionChooser) {
	g.promote = choose
}

// SetGuard turns the self-check guard on or off for the rest of the game.
// Any selection is cleared, since its targets depend on the guard.
func (g *Game) SetGuard(on bool) {
	if g.guard == on {
		return
	}
	g.guard = on
	if g.phase == PhasePieceSelected {
		g.clearSelection()
	}
}

// Click handles a click on sq by the side to move and returns what happened.
//
// With nothing selected, clicking one of the mover's pieces selects it.
// With a piece selected, clicking one of its targets commits the move,
// clicking another own piece moves the selection, and any other click clears
// the selection. Clicks after the game is over are ignored.
func (g *Game) Click(sq board.Square) []Event {
	if g.over {
		return nil
	}

	piece, err := g.board.PieceAt(sq)
	if err != nil {
		// Off the board behaves like a click on empty space.
		return g.deselect()
	}

	if g.phase != PhasePieceSelected {
		switch {
		case piece == board.NoPiece:
			return nil
		case piece.Color() != g.turn:
			return []Event{EventInvalid{From: sq, To: sq, Reason: ReasonNotYourTurn}}
		}
		return g.selectSquare(sq)
	}

	if sq == g.selected {
		return g.deselect()
	}
	if piece != board.NoPiece && piece.Color() == g.turn {
		return g.selectSquare(sq)
	}

	m := board.NewMove(g.selected, sq)
	for _, t := range g.targets {
		if t != sq {
			continue
		}
		events, err := g.commit(m)
		if err != nil {
			log.Printf("[GAME] Error after %v: %v", m, err)
		}
		return events
	}

	events := []Event{EventInvalid{From: g.selected, To: sq, Reason: g.reason(m)}}
	return append(events, g.deselect()...)
}

// Play commits m for the side to move.
//
// m must pass the move validator and, with the guard on, must not leave the
// mover's king attacked. A refused move leaves the game untouched. An error
// raised while evaluating the position after the move stops the game.
func (g *Game) Play(m board.Move) ([]Event, error) {
	if g.over {
		return nil, ErrGameOver
	}

	piece, err := g.board.PieceAt(m.From)
	if err != nil {
		return nil, err
	}
	if piece == board.NoPiece || piece.Color() != g.turn {
		return nil, fmt.Errorf("%w: %s to move, %s", ErrNotYourTurn, g.turn, m)
	}
	if !g.board.IsLegalMove(m.From, m.To, g.turn) {
		return nil, fmt.Errorf("%w: %s %s", board.ErrIllegalMove, g.turn, m)
	}
	if g.guard {
		inCheck, err := g.board.LeavesKingInCheck(m, g.turn)
		if err != nil {
			return nil, err
		}
		if inCheck {
			return nil, fmt.Errorf("%w: %s", ErrKingLeftInCheck, m)
		}
	}

	return g.commit(m)
}

// LegalMoves returns every move the side to move may play, in row-major order
// of origin and then destination.
func (g *Game) LegalMoves() ([]board.Move, error) {
	if g.over {
		return nil, nil
	}
	var moves []board.Move
	for _, from := range g.board.Squares(g.turn) {
		targets, err := g.targetsFrom(from)
		if err != nil {
			return nil, err
		}
		for _, to := range targets {
			moves = append(moves, board.NewMove(from, to))
		}
	}
	return moves, nil
}

// selectSquare selects sq and computes its targets.
func (g *Game) selectSquare(sq board.Square) []Event {
	targets, err := g.targetsFrom(sq)
	if err != nil {
		log.Printf("[GAME] Error selecting %v: %v", sq, err)
		g.stop(err)
		return nil
	}
	g.phase = PhasePieceSelected
	g.selected = sq
	g.targets = targets
	return []Event{EventSelected{Square: sq, Targets: targets}}
}

func (g *Game) deselect() []Event {
	if g.phase != PhasePieceSelected {
		return nil
	}
	sq := g.selected
	g.clearSelection()
	return []Event{EventDeselected{Square: sq}}
}

func (g *Game) clearSelection() {
	g.phase = PhaseNoSelection
	g.selected = board.NoSquare
	g.targets = nil
}

// targetsFrom returns the destinations of the piece on from, filtered by the
// guard when it is on.
func (g *Game) targetsFrom(from board.Square) ([]board.Square, error) {
	dests := g.board.Destinations(from, g.turn)
	if !g.guard {
		return dests, nil
	}

	safe := dests[:0]
	for _, to := range dests {
		inCheck, err := g.board.LeavesKingInCheck(board.NewMove(from, to), g.turn)
		if err != nil {
			return nil, err
		}
		if !inCheck {
			safe = append(safe, to)
		}
	}
	return safe, nil
}

// reason explains why m is not among the selected piece's targets.
func (g *Game) reason(m board.Move) InvalidMoveReason {
	if g.board.IsLegalMove(m.From, m.To, g.turn) {
		// Approved by the validator but filtered out by the guard.
		return ReasonWouldLeaveKingInCheck
	}
	return ReasonInvalidPieceMovement
}

// commit applies m, flips the turn and evaluates the new side to move.
func (g *Game) commit(m board.Move) ([]Event, error) {
	g.selected = board.NoSquare
	g.targets = nil
	g.phase = PhaseMoveCommitted
	mover := g.turn
	log.Printf("[MOVE] %v plays %v", mover, m)

	res, err := g.board.Apply(m, g.promote)
	if err != nil {
		g.phase = PhaseNoSelection
		return nil, err
	}

	g.lastMove = m
	g.history = append(g.history, res)
	g.turn = mover.Other()

	events := []Event{EventMoved{
		Move:      res.Move,
		Piece:     res.Piece,
		Captured:  res.Captured,
		Promotion: res.Promotion,
	}}

	status, err := g.evaluate()
	if err != nil {
		return events, err
	}
	g.phase = PhaseCheckEvaluated

	switch status {
	case board.StatusCheck:
		log.Printf("[CHECK] %v is in check", g.turn)
		events = append(events, EventCheck{Color: g.turn})
	case board.StatusCheckmate:
		log.Printf("[CHECK] %v is checkmated", g.turn)
		events = append(events, EventCheck{Color: g.turn}, EventCheckmate{Winner: mover})
	}
	return events, nil
}

// evaluate updates the status of the side to move and ends the game on mate.
func (g *Game) evaluate() (board.Status, error) {
	status, err := g.board.Evaluate(g.turn)
	if err != nil {
		g.stop(err)
		return status, err
	}
	g.status = status
	if status == board.StatusCheckmate {
		g.over = true
		g.result = fmt.Sprintf("Checkmate! %s wins!", g.turn.Other())
	}
	return status, nil
}

// stop ends the game after an engine error.
func (g *Game) stop(err error) {
	g.clearSelection()
	g.over = true
	g.result = "Game stopped: " + err.Error()
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *board.Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() board.Color {
	return g.turn
}

// Phase returns the current phase of the click flow.
func (g *Game) Phase() Phase {
	return g.phase
}

// Selected returns the selected square, or NoSquare.
func (g *Game) Selected() board.Square {
	return g.selected
}

// Targets returns the highlighted destinations of the selected piece.
func (g *Game) Targets() []board.Square {
	return g.targets
}

// Status returns the check state of the side to move.
func (g *Game) Status() board.Status {
	return g.status
}

// Over returns true once the game has ended.
func (g *Game) Over() bool {
	return g.over
}

// Result returns the game result message, empty while the game is running.
func (g *Game) Result() string {
	return g.result
}

// LastMove returns the most recent move, or NoMove.
func (g *Game) LastMove() board.Move {
	return g.lastMove
}

// History returns every committed move in order.
func (g *Game) History() []board.MoveResult {
	return g.history
}

// Guard reports whether the self-check guard is on.
func (g *Game) Guard() bool {
	return g.guard
}
