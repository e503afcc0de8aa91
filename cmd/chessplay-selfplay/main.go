// Command chessplay-selfplay plays random games against itself in the
// terminal, exercising the rules engine end to end.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hailam/chessrules/internal/config"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	seed    = flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	plies   = flag.Int("plies", 300, "stop after this many plies")
	noColor = flag.Bool("no-color", false, "disable colored output")
	quiet   = flag.Bool("quiet", false, "print only the summary")
	dataDir = flag.String("data", "", "preferences database directory (default: platform data directory)")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	if *noColor {
		color.NoColor = true
	}
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	prefs, store := config.LoadDefault(*dataDir)
	if store != nil {
		store.Close()
	}

	res, err := selfPlay(settings{
		Seed:  s,
		Plies: *plies,
		Quiet: *quiet,
		Guard: prefs.Guard,
	}, os.Stdout)
	if err != nil {
		return err
	}

	log.Println(message.NewPrinter(language.English).
		Sprintf("seed=%d plies=%d captures=%d checks=%d promotions=%d result=%q",
			s, res.Plies, res.Captures, res.Checks, res.Promotions, res.Outcome))
	return nil
}
