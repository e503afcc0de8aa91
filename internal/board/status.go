package board

// Status is the check state of one side.
type Status uint8

const (
	// StatusOngoing is when the side's king is not attacked.
	StatusOngoing Status = iota

	// StatusCheck is when the side's king is attacked but can escape.
	StatusCheck

	// StatusCheckmate is when the side's king is attacked and cannot escape.
	StatusCheckmate
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "Ongoing"
	case StatusCheck:
		return "Check"
	case StatusCheckmate:
		return "Checkmate"
	default:
		return ""
	}
}

// IsCheck returns true for both check and checkmate.
func (s Status) IsCheck() bool {
	return s == StatusCheck || s == StatusCheckmate
}

// Evaluate reports the status of color c. The checkmate search only runs
// when c is in check.
func (b *Board) Evaluate(c Color) (Status, error) {
	inCheck, err := b.IsInCheck(c)
	if err != nil {
		return StatusOngoing, err
	}
	if !inCheck {
		return StatusOngoing, nil
	}

	mate, err := b.IsCheckmate(c)
	if err != nil {
		return StatusCheck, err
	}
	if mate {
		return StatusCheckmate, nil
	}
	return StatusCheck, nil
}
