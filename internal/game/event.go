package game

import "github.com/hailam/chessrules/internal/board"

// Event is something the controller reports back to its caller after a click
// or a move. Callers switch on the concrete type.
type Event interface {
	event()
}

// EventSelected is emitted when a piece of the side to move is selected.
type EventSelected struct {
	Square  board.Square
	Targets []board.Square
}

// EventDeselected is emitted when the current selection is cleared.
type EventDeselected struct {
	Square board.Square
}

// EventMoved is emitted after a move is committed to the board.
type EventMoved struct {
	Move      board.Move
	Piece     board.Piece
	Captured  board.Piece
	Promotion board.PieceType
}

// EventCheck is emitted when Color's king is attacked after a move.
type EventCheck struct {
	Color board.Color
}

// EventCheckmate is emitted when the game ends by checkmate.
type EventCheckmate struct {
	Winner board.Color
}

// EventInvalid is emitted when an attempted move is refused.
type EventInvalid struct {
	From, To board.Square
	Reason   InvalidMoveReason
}

func (EventSelected) event()   {}
func (EventDeselected) event() {}
func (EventMoved) event()      {}
func (EventCheck) event()      {}
func (EventCheckmate) event()  {}
func (EventInvalid) event()    {}

// InvalidMoveReason represents why a move was rejected.
type InvalidMoveReason int

const (
	ReasonUnknown InvalidMoveReason = iota
	ReasonWouldLeaveKingInCheck
	ReasonInvalidPieceMovement
	ReasonNotYourTurn
)

// String returns the message shown to the player.
func (r InvalidMoveReason) String() string {
	switch r {
	case ReasonWouldLeaveKingInCheck:
		return "Illegal move - King would be in check"
	case ReasonInvalidPieceMovement:
		return "Invalid move for this piece"
	case ReasonNotYourTurn:
		return "Not your turn"
	default:
		return "Invalid move"
	}
}
