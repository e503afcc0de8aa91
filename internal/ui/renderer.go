package ui

import (
	"image/color"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	CheckmateColor color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		CheckmateColor: color.RGBA{200, 30, 30, 220},
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{220, 220, 220, 255},
	}
}

// geometry maps board squares to pixels and back. Row 0 is drawn at the top
// unless the board is flipped.
type geometry struct {
	boardSize  int
	squareSize int
	flipped    bool
}

// SquareToScreen returns the top-left pixel of sq.
func (g geometry) SquareToScreen(sq board.Square) (int, int) {
	row, col := sq.Row, sq.Col
	if g.flipped {
		row, col = board.Size-1-row, board.Size-1-col
	}
	return col * g.squareSize, row * g.squareSize
}

// ScreenToSquare returns the square under pixel (x, y), or NoSquare off the board.
func (g geometry) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= g.boardSize || y < 0 || y >= g.boardSize {
		return board.NoSquare
	}
	row, col := y/g.squareSize, x/g.squareSize
	if g.flipped {
		row, col = board.Size-1-row, board.Size-1-col
	}
	return board.NewSquare(row, col)
}

// Renderer handles all board drawing operations.
type Renderer struct {
	geometry
	sprites *SpriteManager
	theme   *Theme
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		geometry: geometry{boardSize: boardSize, squareSize: squareSize},
		sprites:  NewSpriteManager(squareSize),
		theme:    DefaultTheme(),
	}
}

// SetFlipped draws the board with row 7 at the top when flipped is true.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether the board is drawn upside down.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// DrawBoard draws the chess board squares and their coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for _, sq := range board.AllSquares() {
		c := r.theme.LightSquare
		if (sq.Row+sq.Col)%2 == 1 {
			c = r.theme.DarkSquare
		}
		r.highlightSquare(screen, sq, c)
	}
	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters along the bottom edge and rank numbers
// along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetCoordFace()
	if face == nil {
		return
	}
	for i := 0; i < board.Size; i++ {
		// Bottom edge: the square in the last drawn row of column i.
		sq := r.ScreenToSquare(i*r.squareSize, r.boardSize-1)
		x, y := r.SquareToScreen(sq)
		r.drawLabel(screen, face, sq, string(rune('a'+sq.Col)), float64(x+r.squareSize-10), float64(y+r.squareSize-14))

		// Left edge: the square in the first drawn column of row i.
		sq = r.ScreenToSquare(0, i*r.squareSize)
		x, y = r.SquareToScreen(sq)
		r.drawLabel(screen, face, sq, string(rune('0'+board.Size-sq.Row)), float64(x+3), float64(y+2))
	}
}

func (r *Renderer) drawLabel(screen *ebiten.Image, face *text.GoTextFace, sq board.Square, s string, x, y float64) {
	// Use the opposite square color so labels stay readable.
	c := r.theme.DarkSquare
	if (sq.Row+sq.Col)%2 == 1 {
		c = r.theme.LightSquare
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// DrawHighlights draws the last move, the selection and its targets.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets []board.Square, lastMove board.Move) {
	if lastMove != board.NoMove {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, sq := range targets {
		r.drawLegalMoveIndicator(screen, sq)
	}
}

// DrawCheck highlights the king's square, in a darker red on checkmate.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square, mate bool) {
	c := r.theme.CheckColor
	if mate {
		c = r.theme.CheckmateColor
	}
	r.highlightSquare(screen, kingSq, c)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := float32(r.squareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// drawLegalMoveIndicator draws a circle on a target square.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	half := float32(r.squareSize) / 2
	vector.DrawFilledCircle(screen, float32(x)+half, float32(y)+half, float32(r.squareSize)*0.15, r.theme.LegalMoveColor, false)
}

// DrawPieces draws every piece, offset by any running shake animation.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, anims *AnimationManager) {
	for _, sq := range board.AllSquares() {
		piece, _ := b.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}

		x, y := r.SquareToScreen(sq)
		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(sq)
			x += int(offsetX)
			y += int(offsetY)
		}
		r.sprites.DrawPieceAt(screen, piece, x, y)
	}
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
