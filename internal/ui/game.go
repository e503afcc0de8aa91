package ui

import (
	"log"
	"time"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/config"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen dimensions
const (
	ScreenWidth  = 920
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / board.Size
	PanelWidth   = ScreenWidth - BoardSize
)

// promotionKeys picks the promotion piece from the keyboard.
var promotionKeys = map[ebiten.Key]board.PieceType{
	ebiten.KeyQ: board.Queen,
	ebiten.KeyR: board.Rook,
	ebiten.KeyB: board.Bishop,
	ebiten.KeyN: board.Knight,
}

// PreferenceStore persists preferences changed during a session.
type PreferenceStore interface {
	SavePreferences(prefs *config.Preferences) error
}

// Game is the ebiten front end for a two-player game on one screen.
type Game struct {
	ctrl  *game.Game
	prefs *config.Preferences
	store PreferenceStore

	renderer      *Renderer
	input         *InputHandler
	panel         *Panel
	feedback      *FeedbackManager
	settingsModal *SettingsModal
}

// NewGame creates the window's game using prefs. prefs is kept and updated
// by the settings modal, and saved to store when it is not nil.
func NewGame(prefs *config.Preferences, store PreferenceStore) *Game {
	g := &Game{
		prefs:         prefs,
		store:         store,
		renderer:      NewRenderer(BoardSize, SquareSize),
		input:         NewInputHandler(),
		feedback:      NewFeedbackManager(NewAudioManager(prefs.SoundEnabled, prefs.Volume)),
		settingsModal: NewSettingsModal(),
	}
	g.ctrl = game.New(
		game.WithGuard(prefs.Guard),
		game.WithPromotion(prefs.Chooser()),
	)
	g.panel = NewPanel(g)
	g.panel.SyncPromotion(prefs.PromotionType())
	g.renderer.SetFlipped(prefs.FlipBoard)
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	// The settings modal blocks all other input.
	if g.settingsModal.IsVisible() {
		g.settingsModal.Update(g.input)
		return nil
	}

	for _, k := range g.input.JustPressedKeys() {
		g.handleKey(k)
	}

	if g.panel.HandleInput(g.input) {
		return nil
	}

	g.handleBoardInput()
	return nil
}

func (g *Game) handleKey(k ebiten.Key) {
	if pt, ok := promotionKeys[k]; ok {
		g.SetPromotion(pt)
		g.panel.SyncPromotion(pt)
		return
	}
	switch k {
	case ebiten.KeyF:
		g.FlipAction()
	case ebiten.KeyF2:
		g.NewGameAction()
	case ebiten.KeyS:
		g.ShowSettings()
	case ebiten.KeyEscape:
		g.feedback.Handle(g.ctrl.Click(board.NoSquare), g.ctrl.Board())
	}
}

// handleBoardInput turns a click on the board into a controller click.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() {
		return
	}
	mx, my := g.input.MousePosition()
	if mx >= BoardSize || my >= BoardSize {
		return
	}
	sq := g.renderer.ScreenToSquare(mx, my)
	events := g.ctrl.Click(sq)
	g.feedback.Handle(events, g.ctrl.Board())

	for _, e := range events {
		if e, ok := e.(game.EventCheckmate); ok {
			log.Printf("[GAME] %s wins after %d moves", e.Winner, len(g.ctrl.History()))
		}
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen)

	if g.ctrl.Status().IsCheck() {
		if king, err := g.ctrl.Board().FindKing(g.ctrl.Turn()); err == nil {
			g.renderer.DrawCheck(screen, king, g.ctrl.Status() == board.StatusCheckmate)
		}
	}

	var targets []board.Square
	if g.prefs.ShowTargets {
		targets = g.ctrl.Targets()
	}
	g.renderer.DrawHighlights(screen, g.ctrl.Selected(), targets, g.ctrl.LastMove())
	g.renderer.DrawPieces(screen, g.ctrl.Board(), g.feedback.Animations())

	g.feedback.Draw(screen, g.renderer)
	g.panel.Draw(screen)
	g.settingsModal.Draw(screen)
}

// Layout returns the game's logical screen size. Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// NewGameAction resets the game to the starting position.
func (g *Game) NewGameAction() {
	g.ctrl.Reset()
	g.feedback.Reset()
	log.Printf("[GAME] New game")
}

// FlipAction turns the board around.
func (g *Game) FlipAction() {
	g.prefs.FlipBoard = !g.prefs.FlipBoard
	g.renderer.SetFlipped(g.prefs.FlipBoard)
	g.savePreferences()
}

// SetPromotion sets the piece pawns promote to.
func (g *Game) SetPromotion(pt board.PieceType) {
	if pt == g.prefs.PromotionType() {
		return
	}
	g.prefs.SetPromotionType(pt)
	g.savePreferences()
	g.feedback.Toasts().Show("Pawns promote to "+pt.String(), ToastInfo, 1500*time.Millisecond)
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.settingsModal.Show(g.prefs, g.applyPreferences)
}

// applyPreferences copies prefs into the session's preferences, so the
// promotion chooser held by the controller sees the change.
func (g *Game) applyPreferences(prefs *config.Preferences) {
	*g.prefs = *prefs
	g.renderer.SetFlipped(prefs.FlipBoard)
	g.ctrl.SetGuard(prefs.Guard)
	g.panel.SyncPromotion(prefs.PromotionType())
	if a := g.feedback.Audio(); a != nil {
		a.SetEnabled(prefs.SoundEnabled)
		a.SetVolume(prefs.Volume)
	}
	log.Printf("[CONFIG] Settings applied: sound=%v volume=%.2f guard=%v promotion=%s",
		prefs.SoundEnabled, prefs.Volume, prefs.Guard, prefs.Promotion)
	g.savePreferences()
}

// savePreferences writes the session's preferences to the store, if any.
func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	if err := g.store.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
		g.feedback.Toasts().Show("Could not save settings", ToastError, 2*time.Second)
	}
}

// Controller returns the game controller.
func (g *Game) Controller() *game.Game {
	return g.ctrl
}
