package board

// Move is a candidate or committed move from one square to another.
// A Move carries no piece information; it is always evaluated against a
// specific Board and mover color.
type Move struct {
	From, To Square
}

// NoMove represents the absence of a move.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsValid returns true if both squares are on the board.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid()
}

// String returns a debug form of the move (e.g., "e2-e4").
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// MoveResult describes what happened when a move was applied.
type MoveResult struct {
	Move      Move
	Piece     Piece     // The piece that moved, before any promotion
	Captured  Piece     // NoPiece if the destination was empty
	Promotion PieceType // NoPieceType unless a pawn promoted
}

// IsCapture returns true if the move removed an opposing piece.
func (r MoveResult) IsCapture() bool {
	return r.Captured != NoPiece
}

// IsPromotion returns true if a pawn was replaced on the last rank.
func (r MoveResult) IsPromotion() bool {
	return r.Promotion != NoPieceType
}
