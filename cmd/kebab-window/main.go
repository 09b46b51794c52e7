package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/engine"
	"github.com/lixenwraith/kebab-arena/input"
	"github.com/lixenwraith/kebab-arena/parameter"
	"github.com/lixenwraith/kebab-arena/render/window"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML rules file")
	debugFlag  = flag.Bool("debug", false, "Log to stderr")
	seedFlag   = flag.Int64("seed", 0, "Ingredient spawn seed, 0 picks one from the clock")
	scaleFlag  = flag.Float64("scale", 1, "Initial window size multiplier")
)

func main() {
	flag.Parse()

	// The window does not own the terminal, so debug logs can go to stderr
	if !*debugFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scale := *scaleFlag
	if scale <= 0 {
		scale = 1
	}
	width := int(parameter.WindowWidth * scale)
	height := int(parameter.WindowHeight * scale)

	keys := input.NewKeySet()
	display := window.NewDisplay(width, height, cfg.Camera)
	session, err := engine.NewSession(cfg, keys, display, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(parameter.WindowTPS)

	if err := ebiten.RunGame(window.NewGame(session, keys, display)); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Window error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("session %s: exit, best score %d", session.ID, session.BestScore())
}
