package board

import "fmt"

// PromotionChooser picks the piece type a pawn becomes when it reaches the
// last rank. A nil chooser, or one returning a type a pawn cannot become,
// promotes to a Queen.
type PromotionChooser func(sq Square, c Color) PieceType

// Promote returns the promotion choice of choose for a pawn of color c on sq.
func Promote(choose PromotionChooser, sq Square, c Color) PieceType {
	if choose == nil {
		return Queen
	}
	if pt := choose(sq, c); pt.IsPromotion() {
		return pt
	}
	return Queen
}

// Apply moves a piece from m.From to m.To on behalf of the piece's owner.
//
// The move must pass IsLegalMove; otherwise ErrIllegalMove is returned and
// the board is left untouched. A pawn reaching its last rank is replaced by
// the type choose returns.
func (b *Board) Apply(m Move, choose PromotionChooser) (MoveResult, error) {
	if !m.IsValid() {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrOutOfRange, m)
	}

	piece := b.at(m.From)
	if piece == NoPiece {
		return MoveResult{}, fmt.Errorf("%w: %s: no piece on %s", ErrIllegalMove, m, m.From)
	}
	mover := piece.Color()
	if !b.IsLegalMove(m.From, m.To, mover) {
		return MoveResult{}, fmt.Errorf("%w: %s %s", ErrIllegalMove, mover, m)
	}

	result := MoveResult{
		Move:      m,
		Piece:     piece,
		Captured:  b.at(m.To),
		Promotion: NoPieceType,
	}

	placed := piece
	if piece.Type() == Pawn && m.To.Row == mover.lastRow() {
		result.Promotion = Promote(choose, m.To, mover)
		placed = NewPiece(result.Promotion, mover)
	}

	b.set(m.To, placed)
	b.set(m.From, NoPiece)
	return result, nil
}
