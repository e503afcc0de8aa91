package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel and widget palette.
var (
	panelBg        = color.RGBA{38, 40, 45, 255}    // Dark background
	sectionBg      = color.RGBA{48, 52, 58, 255}    // Slightly lighter section
	buttonBg       = color.RGBA{50, 54, 60, 255}    // Button background
	buttonHoverBg  = color.RGBA{65, 70, 78, 255}    // Button hover
	buttonBorder   = color.RGBA{70, 75, 82, 255}    // Subtle button border
	tabActiveBg    = color.RGBA{76, 132, 96, 255}   // Selected option
	accentColor    = color.RGBA{76, 175, 120, 255}  // Green accent
	accentHover    = color.RGBA{96, 195, 140, 255}  // Lighter green on hover
	accentBorder   = color.RGBA{56, 155, 100, 255}  // Darker green border
	textPrimary    = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary  = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted      = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor   = color.RGBA{60, 65, 72, 255}    // Divider line
	moveRowAlt     = color.RGBA{44, 48, 54, 255}    // Alternating row
	statusCheck    = color.RGBA{255, 120, 100, 255} // Red for check
	statusGameOver = color.RGBA{255, 200, 80, 255}  // Yellow for game over
	overlayDim     = color.RGBA{0, 0, 0, 150}       // Behind modals
)

// inRect reports whether (px, py) lies in the rectangle at (x, y) of size w x h.
func inRect(px, py, x, y, w, h int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawTextCentered draws s centered on (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, c color.Color) {
	w, h := MeasureText(s, face)
	drawText(screen, s, face, cx-w/2, cy-h/2, c)
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{X: x, Y: y, Label: label, Checked: checked}
}

// Update toggles the checkbox on click and reports whether it changed.
func (cb *Checkbox) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	cb.hovered = inRect(mx, my, cb.X, cb.Y, 220, 24)
	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	x, y, size := float32(cb.X), float32(cb.Y), float32(20)

	bg := sectionBg
	if cb.hovered {
		bg = buttonHoverBg
	}
	vector.DrawFilledRect(screen, x, y, size, size, bg, false)

	border := buttonBorder
	switch {
	case cb.hovered:
		border = accentColor
	case cb.Checked:
		border = accentBorder
	}
	vector.StrokeRect(screen, x, y, size, size, 2, border, false)

	if cb.Checked {
		vector.StrokeLine(screen, x+4, y+10, x+8, y+14, 2, accentColor, false)
		vector.StrokeLine(screen, x+8, y+14, x+16, y+6, 2, accentColor, false)
	}

	face := GetRegularFace()
	_, h := MeasureText(cb.Label, face)
	c := textSecondary
	if cb.Checked {
		c = textPrimary
	}
	drawText(screen, cb.Label, face, float64(cb.X+30), float64(cb.Y+10)-h/2, c)
}

// ButtonGroup is a horizontal group of mutually exclusive toggle buttons.
type ButtonGroup struct {
	X, Y     int
	Options  []string
	Selected int
	ButtonW  int
	ButtonH  int
	hovered  int
}

// NewButtonGroup creates a new button group.
func NewButtonGroup(x, y int, options []string, selected int, buttonW, buttonH int) *ButtonGroup {
	return &ButtonGroup{
		X:        x,
		Y:        y,
		Options:  options,
		Selected: selected,
		ButtonW:  buttonW,
		ButtonH:  buttonH,
		hovered:  -1,
	}
}

// Update selects the clicked option and reports whether the selection changed.
func (bg *ButtonGroup) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	bg.hovered = -1
	for i := range bg.Options {
		if !inRect(mx, my, bg.X+i*bg.ButtonW, bg.Y, bg.ButtonW, bg.ButtonH) {
			continue
		}
		bg.hovered = i
		if input.IsLeftJustPressed() && bg.Selected != i {
			bg.Selected = i
			return true
		}
	}
	return false
}

// Draw renders the button group.
func (bg *ButtonGroup) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	for i, label := range bg.Options {
		x := float32(bg.X + i*bg.ButtonW)
		w, h := float32(bg.ButtonW), float32(bg.ButtonH)

		fill, border, c := buttonBg, buttonBorder, textSecondary
		switch {
		case i == bg.Selected:
			fill, border, c = tabActiveBg, tabActiveBg, textPrimary
		case i == bg.hovered:
			fill, border = buttonHoverBg, accentColor
		}
		vector.DrawFilledRect(screen, x, float32(bg.Y), w, h, fill, false)
		vector.StrokeRect(screen, x, float32(bg.Y), w, h, 1, border, false)
		drawTextCentered(screen, label, face, float64(x+w/2), float64(float32(bg.Y)+h/2), c)
	}
}

// Button is a clickable push button.
type Button struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
}

// NewButton creates a new button.
func NewButton(x, y, w, h int, label string, primary bool, onClick func()) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, Primary: primary, OnClick: onClick}
}

// Update runs OnClick when the button is clicked and reports whether it was.
func (b *Button) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	b.hovered = inRect(mx, my, b.X, b.Y, b.W, b.H)
	if input.IsLeftJustPressed() && b.hovered && b.OnClick != nil {
		b.OnClick()
		return true
	}
	return false
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	fill, border := buttonBg, buttonBorder
	switch {
	case b.Primary && b.hovered:
		fill, border = accentHover, accentColor
	case b.Primary:
		fill, border = accentColor, accentBorder
	case b.hovered:
		fill, border = buttonHoverBg, accentColor
	}
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, border, false)
	drawTextCentered(screen, b.Label, GetRegularFace(), float64(x+w/2), float64(y+h/2), textPrimary)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 1, dividerColor, false)
}

// DrawSectionHeader draws a muted section label.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	face := GetRegularFace()
	_, h := MeasureText(label, face)
	drawText(screen, label, face, float64(x), float64(y)-h/2, textMuted)
}
