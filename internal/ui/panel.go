package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 28
	ButtonHeight   = 40
	TabHeight      = 32
	SectionLabelH  = 20
	moveRowHeight  = 22
	statusBarH     = 70
)

// Panel represents the side panel with controls and move history.
type Panel struct {
	game *Game

	newGameBtn    *Button
	settingsBtn   *Button
	flipBtn       *Button
	promotionTabs *ButtonGroup

	scrollY    int
	maxScrollY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

func (p *Panel) createButtons() {
	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	y := PanelPadding + 8
	p.newGameBtn = NewButton(contentX, y, contentW, ButtonHeight, "New Game", true, p.game.NewGameAction)

	y += ButtonHeight + 8
	half := (contentW - 8) / 2
	p.settingsBtn = NewButton(contentX, y, half, ButtonHeight-6, "Settings", false, p.game.ShowSettings)
	p.flipBtn = NewButton(contentX+half+8, y, half, ButtonHeight-6, "Flip", false, p.game.FlipAction)

	y += ButtonHeight - 6 + SectionSpacing + SectionLabelH - 8
	labels := make([]string, len(board.PromotionTypes))
	for i, pt := range board.PromotionTypes {
		labels[i] = pt.String()
	}
	p.promotionTabs = NewButtonGroup(contentX, y, labels, 0, contentW/len(labels), TabHeight)
}

// SyncPromotion selects the tab for pt.
func (p *Panel) SyncPromotion(pt board.PieceType) {
	for i, t := range board.PromotionTypes {
		if t == pt {
			p.promotionTabs.Selected = i
		}
	}
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	if _, wheelY := ebiten.Wheel(); wheelY != 0 && mx >= BoardSize && my >= p.historyY() {
		p.scrollY -= int(wheelY * 30)
		p.scrollY = max(0, min(p.scrollY, p.maxScrollY))
	}

	if p.promotionTabs.Update(input) {
		p.game.SetPromotion(board.PromotionTypes[p.promotionTabs.Selected])
		return true
	}
	for _, b := range []*Button{p.newGameBtn, p.settingsBtn, p.flipBtn} {
		if b.Update(input) {
			return true
		}
	}
	return false
}

func (p *Panel) historyY() int {
	return p.promotionTabs.Y + TabHeight + SectionSpacing - 4
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(BoardSize), 0, float32(PanelWidth), float32(ScreenHeight), panelBg, false)

	p.newGameBtn.Draw(screen)
	p.settingsBtn.Draw(screen)
	p.flipBtn.Draw(screen)

	x := BoardSize + PanelPadding
	DrawSectionHeader(screen, "Promote pawns to", x, p.promotionTabs.Y-SectionLabelH/2-4)
	p.promotionTabs.Draw(screen)

	historyY := p.historyY()
	DrawSectionHeader(screen, "Moves", x, historyY)
	p.drawMoveHistory(screen, historyY+SectionLabelH)

	p.drawStatusBar(screen)
}

// moveLabel formats a committed move for the history list, such as "Nb1-c3",
// "e4xd5" or "e7-e8=Q".
func moveLabel(r board.MoveResult) string {
	var sb strings.Builder
	if t := r.Piece.Type(); t != board.Pawn {
		sb.WriteByte(t.Char() - 'a' + 'A')
	}
	sb.WriteString(r.Move.From.String())
	if r.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(r.Move.To.String())
	if r.Promotion.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(r.Promotion.Char() - 'a' + 'A')
	}
	return sb.String()
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	face := GetRegularFace()
	history := p.game.Controller().History()
	x := BoardSize + PanelPadding
	if len(history) == 0 {
		drawText(screen, "No moves yet", face, float64(x), float64(startY+5), textMuted)
		return
	}

	maxY := ScreenHeight - statusBarH
	visible := maxY - startY
	rows := (len(history) + 1) / 2
	p.maxScrollY = max(0, rows*moveRowHeight-visible)
	p.scrollY = min(p.scrollY, p.maxScrollY)

	y := startY - p.scrollY%moveRowHeight
	for row := p.scrollY / moveRowHeight; row < rows && y <= maxY-moveRowHeight; row++ {
		if row%2 == 1 {
			vector.DrawFilledRect(screen, float32(x-4), float32(y-2), float32(PanelWidth-PanelPadding*2+8), float32(moveRowHeight), moveRowAlt, false)
		}
		if y >= startY {
			drawText(screen, fmt.Sprintf("%d.", row+1), face, float64(x), float64(y), textMuted)
			drawText(screen, moveLabel(history[row*2]), face, float64(x+34), float64(y), textPrimary)
			if row*2+1 < len(history) {
				drawText(screen, moveLabel(history[row*2+1]), face, float64(x+130), float64(y), textPrimary)
			}
		}
		y += moveRowHeight
	}
}

// statusLine describes the controller's state for the status bar.
func statusLine(g *game.Game) (string, color.RGBA) {
	switch {
	case g.Over():
		return g.Result(), statusGameOver
	case g.Status().IsCheck():
		return fmt.Sprintf("%s to move - Check!", g.Turn()), statusCheck
	default:
		return fmt.Sprintf("%s to move", g.Turn()), textPrimary
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - statusBarH
	x := BoardSize + PanelPadding
	DrawDivider(screen, x, statusY-10, PanelWidth-PanelPadding*2)

	face := GetRegularFace()
	ctrl := p.game.Controller()
	s, c := statusLine(ctrl)
	drawText(screen, s, face, float64(x), float64(statusY), c)

	guard := "Self-check guard on"
	if !ctrl.Guard() {
		guard = "Self-check guard off"
	}
	drawText(screen, guard, face, float64(x), float64(statusY+22), textSecondary)
}
