package board

// IsInCheck returns true if the king of color c is attacked by any opposing
// piece. It fails only when c has no king on the board.
func (b *Board) IsInCheck(c Color) (bool, error) {
	king, err := b.FindKing(c)
	if err != nil {
		return false, err
	}

	them := c.Other()
	for _, sq := range b.Squares(them) {
		if b.IsLegalMove(sq, king, them) {
			return true, nil
		}
	}
	return false, nil
}

// Attackers returns the squares of every opposing piece attacking c's king.
func (b *Board) Attackers(c Color) ([]Square, error) {
	king, err := b.FindKing(c)
	if err != nil {
		return nil, err
	}

	var attackers []Square
	them := c.Other()
	for _, sq := range b.Squares(them) {
		if b.IsLegalMove(sq, king, them) {
			attackers = append(attackers, sq)
		}
	}
	return attackers, nil
}
