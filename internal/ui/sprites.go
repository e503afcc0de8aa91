// Package ui implements the chess board UI using Ebitengine.
package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// pieceShapes holds the SVG body of each piece on a 45x45 canvas.
// %[1]s is the fill color and %[2]s the outline color.
var pieceShapes = map[board.PieceType]string{
	board.Pawn: `<circle cx="22.5" cy="14" r="5" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M16 36 L29 36 L27 27 Q22.5 21 18 27 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<rect x="12" y="36" width="21" height="4" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,

	board.Rook: `<path d="M12 9 L16 9 L16 12 L20 12 L20 9 L25 9 L25 12 L29 12 L29 9 L33 9 L33 15 L30 18 L30 32 L15 32 L15 18 L12 15 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<rect x="10" y="32" width="25" height="6" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,

	board.Knight: `<path d="M22 10 Q32 11 31 36 L14 36 Q13 27 22 24 Q18 26 12 26 Q9 23 12 19 Q17 12 22 10 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="17" cy="17" r="1.5" fill="%[2]s"/>
<rect x="11" y="36" width="23" height="4" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,

	board.Bishop: `<circle cx="22.5" cy="8" r="2.5" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M22.5 11 Q31 18 28 28 L17 28 Q14 18 22.5 11 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<path d="M20 17 L25 17 M22.5 14.5 L22.5 19.5" stroke="%[2]s" stroke-width="1.5"/>
<path d="M17 28 L28 28 L30 33 L15 33 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<rect x="10" y="34" width="25" height="4" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,

	board.Queen: `<path d="M9 14 L14 28 L16 12 L20.5 27 L22.5 10 L24.5 27 L29 12 L31 28 L36 14 L32 34 L13 34 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="9" cy="13" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="16" cy="11" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="22.5" cy="9" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="29" cy="11" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<circle cx="36" cy="13" r="2" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<rect x="11" y="34" width="23" height="5" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,

	board.King: `<path d="M22.5 5 L22.5 13 M19 8.5 L26 8.5" stroke="%[2]s" stroke-width="2"/>
<path d="M22.5 16 Q28 12 33 16 Q38 22 30 31 L15 31 Q7 22 12 16 Q17 12 22.5 16 Z" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>
<rect x="12" y="31" width="21" height="8" fill="%[1]s" stroke="%[2]s" stroke-width="1.5"/>`,
}

// pieceSVG returns a standalone SVG document for p.
func pieceSVG(p board.Piece) string {
	shape, ok := pieceShapes[p.Type()]
	if !ok {
		return ""
	}
	fill, stroke := "#ffffff", "#000000"
	if p.Color() == board.Black {
		fill, stroke = "#000000", "#ffffff"
	}
	return `<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">` +
		fmt.Sprintf(shape, fill, stroke) + `</svg>`
}

// rasterize renders p's SVG into a size x size RGBA image.
func rasterize(p board.Piece, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(p)))
	if err != nil {
		return nil, fmt.Errorf("parse %v: %w", p, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces renders every piece sprite.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		for pt := range pieceShapes {
			p := board.NewPiece(pt, c)
			rgba, err := rasterize(p, renderSize)
			if err != nil {
				log.Printf("Failed to render piece: %v", err)
				continue
			}
			sm.pieces[p] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sm.DrawPieceScaled(screen, p, float64(x), float64(y), float64(sm.size))
}

// DrawPieceScaled draws a piece with its top-left corner at (x, y) and the
// given display size.
func (sm *SpriteManager) DrawPieceScaled(screen *ebiten.Image, p board.Piece, x, y, size float64) {
	if p == board.NoPiece {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := size / (float64(sm.size) * sm.renderScale)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
