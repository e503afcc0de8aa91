package board

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sign[T constraints.Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// IsLegalMove reports whether the piece on from may move to to for mover.
//
// The check is pseudo-legal: it covers ownership, occupancy, line of sight
// and per-piece geometry, but not whether the move leaves mover's own king
// attacked (see LeavesKingInCheck). Castling and en passant are not moves.
// IsLegalMove never mutates the board and returns false for squares off the board.
func (b *Board) IsLegalMove(from, to Square, mover Color) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}

	piece := b.at(from)
	if piece == NoPiece || piece.Color() != mover {
		return false
	}

	// Cannot capture own piece. Also rejects from == to.
	if target := b.at(to); target != NoPiece && target.Color() == mover {
		return false
	}

	// Knights jump; every other piece needs an open line.
	if piece.Type() != Knight && !b.pathClear(from, to) {
		return false
	}

	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch piece.Type() {
	case Pawn:
		return b.pawnMove(from, to, mover)
	case Rook:
		return rookMove(dr, dc)
	case Knight:
		return knightMove(dr, dc)
	case Bishop:
		return bishopMove(dr, dc)
	case Queen:
		return rookMove(dr, dc) || bishopMove(dr, dc)
	case King:
		return abs(dr) <= 1 && abs(dc) <= 1
	default:
		return false
	}
}

// pathClear reports whether every square strictly between from and to is
// empty. Displacements that are neither straight nor diagonal have no line
// between them and are never clear.
func (b *Board) pathClear(from, to Square) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return false
	}

	stepR, stepC := sign(dr), sign(dc)
	for sq := from.Offset(stepR, stepC); sq != to; sq = sq.Offset(stepR, stepC) {
		if b.at(sq) != NoPiece {
			return false
		}
	}
	return true
}

func (b *Board) pawnMove(from, to Square, mover Color) bool {
	dir := mover.forward()
	dr, dc := to.Row-from.Row, to.Col-from.Col

	if dc == 0 {
		// Single push
		if dr == dir && b.at(to) == NoPiece {
			return true
		}
		// Double push from the starting row
		if from.Row == mover.pawnRow() && dr == 2*dir &&
			b.at(from.Offset(dir, 0)) == NoPiece && b.at(to) == NoPiece {
			return true
		}
		return false
	}

	// Diagonal step is capture-only.
	return abs(dc) == 1 && dr == dir && b.at(to) != NoPiece
}

func rookMove(dr, dc int) bool {
	return dr == 0 || dc == 0
}

func knightMove(dr, dc int) bool {
	ar, ac := abs(dr), abs(dc)
	return (ar == 2 && ac == 1) || (ar == 1 && ac == 2)
}

func bishopMove(dr, dc int) bool {
	return abs(dr) == abs(dc)
}

// Destinations returns every square the piece on from may move to for mover,
// in row-major order.
func (b *Board) Destinations(from Square, mover Color) []Square {
	var dests []Square
	for _, to := range AllSquares() {
		if b.IsLegalMove(from, to, mover) {
			dests = append(dests, to)
		}
	}
	return dests
}
