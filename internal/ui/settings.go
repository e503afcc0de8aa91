package ui

import (
	"fmt"
	"math"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Settings modal dimensions
const (
	SettingsWidth  = 400
	SettingsHeight = 470
	SettingsPadX   = 24
	SettingsPadY   = 20
)

var volumeSteps = []float64{0, 0.25, 0.5, 0.75, 1}

// SettingsModal edits the preferences of the running session.
type SettingsModal struct {
	visible bool
	x, y    int

	soundCheckbox   *Checkbox
	volumeBtns      *ButtonGroup
	targetsCheckbox *Checkbox
	guardCheckbox   *Checkbox
	flipCheckbox    *Checkbox
	promotionBtns   *ButtonGroup
	applyBtn        *Button
	cancelBtn       *Button

	onApply func(*config.Preferences)
}

// NewSettingsModal creates a hidden settings modal centered on the screen.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{
		x: (ScreenWidth - SettingsWidth) / 2,
		y: (ScreenHeight - SettingsHeight) / 2,
	}
	sm.createWidgets()
	return sm
}

func (sm *SettingsModal) createWidgets() {
	contentX := sm.x + SettingsPadX
	contentW := SettingsWidth - SettingsPadX*2

	y := sm.y + 64
	sm.soundCheckbox = NewCheckbox(contentX, y, "Sound effects", true)

	y += 56
	labels := make([]string, len(volumeSteps))
	for i, v := range volumeSteps {
		labels[i] = fmt.Sprintf("%d%%", int(v*100))
	}
	sm.volumeBtns = NewButtonGroup(contentX, y, labels, 2, contentW/len(labels), 32)

	y += 52
	sm.targetsCheckbox = NewCheckbox(contentX, y, "Highlight legal targets", true)
	y += 32
	sm.guardCheckbox = NewCheckbox(contentX, y, "Refuse moves into check", true)
	y += 32
	sm.flipCheckbox = NewCheckbox(contentX, y, "Flip board", false)

	y += 60
	promo := make([]string, len(board.PromotionTypes))
	for i, pt := range board.PromotionTypes {
		promo[i] = pt.String()
	}
	sm.promotionBtns = NewButtonGroup(contentX, y, promo, 0, contentW/len(promo), 32)

	btnW, btnH, gap := 100, 38, 12
	btnY := sm.y + SettingsHeight - SettingsPadY - btnH
	sm.cancelBtn = NewButton(sm.x+SettingsWidth-SettingsPadX-btnW*2-gap, btnY, btnW, btnH, "Cancel", false, sm.Hide)
	sm.applyBtn = NewButton(sm.x+SettingsWidth-SettingsPadX-btnW, btnY, btnW, btnH, "Apply", true, sm.apply)
}

// Show opens the modal on prefs. onApply receives an edited copy.
func (sm *SettingsModal) Show(prefs *config.Preferences, onApply func(*config.Preferences)) {
	sm.visible = true
	sm.onApply = onApply
	sm.load(prefs)
}

// Hide closes the modal, discarding edits.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

// load copies prefs into the widgets.
func (sm *SettingsModal) load(prefs *config.Preferences) {
	sm.soundCheckbox.Checked = prefs.SoundEnabled
	sm.targetsCheckbox.Checked = prefs.ShowTargets
	sm.guardCheckbox.Checked = prefs.Guard
	sm.flipCheckbox.Checked = prefs.FlipBoard

	sm.volumeBtns.Selected = nearestStep(prefs.Volume)
	sm.promotionBtns.Selected = 0
	for i, pt := range board.PromotionTypes {
		if pt == prefs.PromotionType() {
			sm.promotionBtns.Selected = i
		}
	}
}

// nearestStep returns the index of the volume step closest to v.
func nearestStep(v float64) int {
	best := 0
	for i, s := range volumeSteps {
		if math.Abs(s-v) < math.Abs(volumeSteps[best]-v) {
			best = i
		}
	}
	return best
}

// values reads the widgets back into a new Preferences.
func (sm *SettingsModal) values() *config.Preferences {
	prefs := config.DefaultPreferences()
	prefs.SoundEnabled = sm.soundCheckbox.Checked
	prefs.ShowTargets = sm.targetsCheckbox.Checked
	prefs.Guard = sm.guardCheckbox.Checked
	prefs.FlipBoard = sm.flipCheckbox.Checked
	prefs.Volume = volumeSteps[sm.volumeBtns.Selected]
	prefs.SetPromotionType(board.PromotionTypes[sm.promotionBtns.Selected])
	return prefs
}

func (sm *SettingsModal) apply() {
	sm.visible = false
	if sm.onApply != nil {
		sm.onApply(sm.values())
	}
}

// Update handles input while the modal is visible. Escape cancels and Enter
// applies.
func (sm *SettingsModal) Update(input *InputHandler) {
	if !sm.visible {
		return
	}
	for _, k := range input.JustPressedKeys() {
		switch k {
		case ebiten.KeyEscape:
			sm.Hide()
			return
		case ebiten.KeyEnter:
			sm.apply()
			return
		}
	}

	sm.soundCheckbox.Update(input)
	sm.volumeBtns.Update(input)
	sm.targetsCheckbox.Update(input)
	sm.guardCheckbox.Update(input)
	sm.flipCheckbox.Update(input)
	sm.promotionBtns.Update(input)
	if sm.cancelBtn.Update(input) {
		return
	}
	sm.applyBtn.Update(input)
}

// Draw renders the modal over a dimmed screen.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(ScreenWidth), float32(ScreenHeight), overlayDim, false)

	x, y := float32(sm.x), float32(sm.y)
	w, h := float32(SettingsWidth), float32(SettingsHeight)
	vector.DrawFilledRect(screen, x, y, w, h, panelBg, false)
	vector.DrawFilledRect(screen, x, y, w, 48, sectionBg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, buttonBorder, false)
	drawText(screen, "Settings", GetBoldFace(), float64(sm.x+SettingsPadX), float64(sm.y+14), textPrimary)

	contentX := sm.x + SettingsPadX
	sm.soundCheckbox.Draw(screen)
	DrawSectionHeader(screen, "Volume", contentX, sm.volumeBtns.Y-14)
	sm.volumeBtns.Draw(screen)
	DrawDivider(screen, contentX, sm.targetsCheckbox.Y-12, SettingsWidth-SettingsPadX*2)
	sm.targetsCheckbox.Draw(screen)
	sm.guardCheckbox.Draw(screen)
	sm.flipCheckbox.Draw(screen)
	DrawSectionHeader(screen, "Promote pawns to", contentX, sm.promotionBtns.Y-14)
	sm.promotionBtns.Draw(screen)

	sm.cancelBtn.Draw(screen)
	sm.applyBtn.Draw(screen)
}
