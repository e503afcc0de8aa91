package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hailam/chessrules/internal/board"
)

// ErrInvalidPreferences is returned when stored preferences cannot be decoded
// or hold values outside their allowed range.
var ErrInvalidPreferences = errors.New("invalid preferences")

// Preferences stores user settings.
type Preferences struct {
	SoundEnabled bool    `json:"sound_enabled"`
	Volume       float64 `json:"volume"`
	FlipBoard    bool    `json:"flip_board"`
	ShowTargets  bool    `json:"show_targets"`
	Guard        bool    `json:"guard"`

	// Promotion is the piece a pawn becomes on the last rank: "Q", "R", "B" or "N".
	Promotion string `json:"promotion"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		SoundEnabled: true,
		Volume:       0.5,
		FlipBoard:    false,
		ShowTargets:  true,
		Guard:        true,
		Promotion:    "Q",
	}
}

// Validate checks every field and normalises the promotion letter.
func (p *Preferences) Validate() error {
	if p.Volume < 0 || p.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f not in [0, 1]", ErrInvalidPreferences, p.Volume)
	}
	p.Promotion = strings.ToUpper(strings.TrimSpace(p.Promotion))
	if _, ok := promotionTypes[p.Promotion]; !ok {
		return fmt.Errorf("%w: promotion %q is not one of Q, R, B, N", ErrInvalidPreferences, p.Promotion)
	}
	return nil
}

var promotionTypes = map[string]board.PieceType{
	"Q": board.Queen,
	"R": board.Rook,
	"B": board.Bishop,
	"N": board.Knight,
}

// PromotionType returns the configured promotion piece, Queen if unset.
func (p *Preferences) PromotionType() board.PieceType {
	if pt, ok := promotionTypes[strings.ToUpper(p.Promotion)]; ok {
		return pt
	}
	return board.Queen
}

// SetPromotionType stores pt as the promotion piece. Types a pawn cannot
// become are ignored.
func (p *Preferences) SetPromotionType(pt board.PieceType) {
	if !pt.IsPromotion() {
		return
	}
	p.Promotion = strings.ToUpper(string(pt.Char()))
}

// Chooser returns a promotion chooser that always picks the configured piece.
// It reads the preferences on every call, so later changes take effect.
func (p *Preferences) Chooser() board.PromotionChooser {
	return func(board.Square, board.Color) board.PieceType {
		return p.PromotionType()
	}
}
