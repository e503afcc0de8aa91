package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification, dropping the oldest past maxStack.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Active returns the toasts currently shown, oldest first.
func (tm *ToastManager) Active() []*Toast {
	return tm.toasts
}

// Clear removes every toast.
func (tm *ToastManager) Clear() {
	tm.toasts = nil
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

func toastColors(tt ToastType, alpha float64) (bg, fg color.RGBA) {
	a := uint8(220 * alpha)
	fg = color.RGBA{255, 255, 255, uint8(255 * alpha)}
	switch tt {
	case ToastWarning:
		return color.RGBA{180, 140, 20, a}, color.RGBA{40, 30, 0, uint8(255 * alpha)}
	case ToastError:
		return color.RGBA{180, 50, 50, a}, fg
	case ToastSuccess:
		return color.RGBA{50, 150, 50, a}, fg
	default:
		return color.RGBA{50, 100, 150, a}, fg
	}
}

// Draw renders all active toasts centered over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	const padding, fade = 12.0, 0.2
	y := 50.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		alpha := 1.0
		if elapsed < fade {
			alpha = elapsed / fade
		} else if elapsed > duration-fade {
			alpha = math.Max(0, (duration-elapsed)/fade)
		}
		bg, fg := toastColors(t.Type, alpha)

		w, h := MeasureText(t.Message, face)
		boxW, boxH := w+padding*2, h+padding*2
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// effect is a short animation attached to one square.
type effect struct {
	square board.Square
	start  time.Time
	length time.Duration
	color  color.RGBA
}

func (e *effect) progress(now time.Time) float64 {
	return now.Sub(e.start).Seconds() / e.length.Seconds()
}

// AnimationManager manages shake and flash animations.
type AnimationManager struct {
	shakes  []*effect
	flashes []*effect
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake shakes the piece on sq.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, &effect{square: sq, start: time.Now(), length: 300 * time.Millisecond})
}

// StartFlash flashes sq in c, fading out.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, &effect{square: sq, start: time.Now(), length: 400 * time.Millisecond, color: c})
}

// Clear stops every animation.
func (am *AnimationManager) Clear() {
	am.shakes, am.flashes = nil, nil
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()
	am.shakes = prune(am.shakes, now)
	am.flashes = prune(am.flashes, now)
}

func prune(effects []*effect, now time.Time) []*effect {
	active := effects[:0]
	for _, e := range effects {
		if e.progress(now) < 1 {
			active = append(active, e)
		}
	}
	return active
}

// GetShakeOffset returns the current horizontal shake offset for a square.
func (am *AnimationManager) GetShakeOffset(sq board.Square) (float64, float64) {
	const intensity, decay, freq = 8.0, 5.0, 40.0
	now := time.Now()
	for _, s := range am.shakes {
		if s.square != sq {
			continue
		}
		p := s.progress(now)
		if p >= 1 {
			return 0, 0
		}
		// Damped sine.
		return intensity * math.Exp(-decay*p) * math.Sin(freq*p), 0
	}
	return 0, 0
}

// DrawFlashes renders all active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, r *Renderer) {
	now := time.Now()
	for _, f := range am.flashes {
		p := f.progress(now)
		if p >= 1 || !f.square.IsValid() {
			continue
		}
		c := f.color
		c.A = uint8(float64(c.A) * (1 - p))
		x, y := r.SquareToScreen(f.square)
		size := float32(r.SquareSize())
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
}

var (
	invalidFlash = color.RGBA{255, 80, 80, 150}
	checkFlash   = color.RGBA{255, 60, 60, 170}
)

// FeedbackManager turns controller events into toasts, animations and sound.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager. audio may be nil.
func NewFeedbackManager(audio *AudioManager) *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      audio,
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, r *Renderer) {
	fm.animations.DrawFlashes(screen, r)
	fm.toasts.Draw(screen)
}

// Reset clears pending feedback, for a new game.
func (fm *FeedbackManager) Reset() {
	fm.toasts.Clear()
	fm.animations.Clear()
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Toasts returns the toast manager.
func (fm *FeedbackManager) Toasts() *ToastManager {
	return fm.toasts
}

// Audio returns the audio manager, or nil.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// Handle reacts to the events of one click or move. b is the board after
// the events happened.
func (fm *FeedbackManager) Handle(events []game.Event, b *board.Board) {
	mate := false
	for _, e := range events {
		if _, ok := e.(game.EventCheckmate); ok {
			mate = true
		}
	}
	for _, e := range events {
		switch e := e.(type) {
		case game.EventMoved:
			fm.onMoved(e)
		case game.EventCheck:
			fm.onCheck(e, b, mate)
		case game.EventCheckmate:
			fm.toasts.Show(fmt.Sprintf("Checkmate! %s wins!", e.Winner), ToastSuccess, 5*time.Second)
			fm.play(SoundGameEnd)
		case game.EventInvalid:
			fm.toasts.Show(e.Reason.String(), ToastWarning, 2*time.Second)
			fm.animations.StartShake(e.From)
			if e.To != e.From {
				fm.animations.StartFlash(e.To, invalidFlash)
			}
			fm.play(SoundInvalid)
		}
	}
}

func (fm *FeedbackManager) onMoved(e game.EventMoved) {
	switch {
	case e.Promotion.IsPromotion():
		fm.toasts.Show("Promoted to "+e.Promotion.String(), ToastInfo, 2*time.Second)
		fm.play(SoundPromote)
	case e.Captured != board.NoPiece:
		fm.play(SoundCapture)
	default:
		fm.play(SoundMove)
	}
}

func (fm *FeedbackManager) onCheck(e game.EventCheck, b *board.Board, mate bool) {
	if b != nil {
		if king, err := b.FindKing(e.Color); err == nil {
			fm.animations.StartFlash(king, checkFlash)
		}
	}
	// Checkmate has its own toast and sound.
	if !mate {
		fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
		fm.play(SoundCheck)
	}
}

func (fm *FeedbackManager) play(s SoundType) {
	if fm.audio != nil {
		fm.audio.Play(s)
	}
}
