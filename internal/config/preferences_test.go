package config

import (
	"errors"
	"testing"

	"github.com/hailam/chessrules/internal/board"
)

func TestPreferences(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
		if !prefs.Guard {
			t.Errorf("Expected guard enabled by default")
		}
		if !prefs.ShowTargets {
			t.Errorf("Expected targets shown by default")
		}
		if prefs.PromotionType() != board.Queen {
			t.Errorf("Expected queen promotion, got %v", prefs.PromotionType())
		}
		if err := prefs.Validate(); err != nil {
			t.Errorf("Defaults should validate: %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tests := []struct {
			name    string
			modify  func(*Preferences)
			wantErr bool
		}{
			{"lowercase promotion", func(p *Preferences) { p.Promotion = " n " }, false},
			{"volume too high", func(p *Preferences) { p.Volume = 1.5 }, true},
			{"negative volume", func(p *Preferences) { p.Volume = -0.1 }, true},
			{"king promotion", func(p *Preferences) { p.Promotion = "K" }, true},
			{"empty promotion", func(p *Preferences) { p.Promotion = "" }, true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				prefs := DefaultPreferences()
				tt.modify(prefs)
				err := prefs.Validate()
				if (err != nil) != tt.wantErr {
					t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
				if err != nil && !errors.Is(err, ErrInvalidPreferences) {
					t.Errorf("Expected ErrInvalidPreferences, got %v", err)
				}
			})
		}
	})

	t.Run("Chooser", func(t *testing.T) {
		prefs := DefaultPreferences()
		choose := prefs.Chooser()
		if got := choose(board.NewSquare(0, 0), board.White); got != board.Queen {
			t.Errorf("Expected Queen, got %v", got)
		}
		prefs.SetPromotionType(board.Knight)
		if prefs.Promotion != "N" {
			t.Errorf("Expected promotion N, got %q", prefs.Promotion)
		}
		if got := choose(board.NewSquare(0, 0), board.White); got != board.Knight {
			t.Errorf("Chooser should follow later changes, got %v", got)
		}
		prefs.SetPromotionType(board.King)
		if prefs.Promotion != "N" {
			t.Errorf("King should be ignored, got %q", prefs.Promotion)
		}
	})
}
