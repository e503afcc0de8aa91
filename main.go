// ChessPlay - a two-player chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hailam/chessrules/internal/config"
	"github.com/hailam/chessrules/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	dataDir = flag.String("data", "", "preferences database directory (default: platform data directory)")
	flip    = flag.Bool("flip", false, "start with Black at the bottom")
	mute    = flag.Bool("mute", false, "disable sound effects")
)

func main() {
	flag.Parse()

	prefs, store := config.LoadDefault(*dataDir)
	if *flip {
		prefs.FlipBoard = true
	}
	if *mute {
		prefs.SoundEnabled = false
	}

	var saver ui.PreferenceStore
	if store != nil {
		saver = store
	}
	game := ui.NewGame(prefs, saver)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessPlay")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(game)
	if store != nil {
		if cerr := store.Close(); cerr != nil {
			log.Printf("Warning: Failed to close preferences store: %v", cerr)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}
