package board

// Try applies m to the board, runs fn, and restores both squares afterwards.
//
// The move is applied as a plain relocation: no legality check and no
// promotion. Restoration is deferred, so the board is back to its prior
// state when Try returns, whether fn succeeds, fails or panics.
func (b *Board) Try(m Move, fn func() error) error {
	if !m.IsValid() {
		return ErrOutOfRange
	}

	origin, target := b.at(m.From), b.at(m.To)
	defer func() {
		b.set(m.From, origin)
		b.set(m.To, target)
	}()

	b.set(m.To, origin)
	b.set(m.From, NoPiece)
	return fn()
}

// LeavesKingInCheck reports whether playing m would leave mover's king attacked.
func (b *Board) LeavesKingInCheck(m Move, mover Color) (bool, error) {
	var inCheck bool
	err := b.Try(m, func() error {
		var err error
		inCheck, err = b.IsInCheck(mover)
		return err
	})
	return inCheck, err
}

// IsCheckmate returns true if no legal move by c removes the check on c's king.
// It is meaningful only when IsInCheck(c) is already true.
//
// Every own piece is tried against every square on the board. The board is
// left exactly as it was found.
func (b *Board) IsCheckmate(c Color) (bool, error) {
	if _, err := b.FindKing(c); err != nil {
		return false, err
	}
	escape, err := b.FindEscape(c)
	if err != nil {
		return false, err
	}
	return escape == NoMove, nil
}

// FindEscape returns the first move, in row-major order of origin and then
// destination, that leaves c's king unattacked, or NoMove if there is none.
func (b *Board) FindEscape(c Color) (Move, error) {
	for _, from := range b.Squares(c) {
		for _, to := range AllSquares() {
			if !b.IsLegalMove(from, to, c) {
				continue
			}
			m := NewMove(from, to)
			inCheck, err := b.LeavesKingInCheck(m, c)
			if err != nil {
				return NoMove, err
			}
			if !inCheck {
				return m, nil
			}
		}
	}
	return NoMove, nil
}
