package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kebab-arena/config"
	"github.com/lixenwraith/kebab-arena/engine"
	"github.com/lixenwraith/kebab-arena/input"
	"github.com/lixenwraith/kebab-arena/render/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML rules file")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seedFlag   = flag.Int64("seed", 0, "Ingredient spawn seed, 0 picks one from the clock")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override, 0 keeps the configured interval")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *fpsFlag > 0 {
		cfg.Terminal.FrameInterval = time.Second / time.Duration(*fpsFlag)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic Recovery: reset the terminal before the trace is printed
	crash := crashHandler(screen)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	keys := input.NewKeySet()
	display := terminal.NewDisplay(screen, cfg.Camera)
	session, err := engine.NewSession(cfg, keys, display, seed)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}
	log.Printf("session %s: seed %d", session.ID, seed)

	r := newRunner(screen, session, keys, display, cfg.Terminal, engine.NewMonotonicTimeProvider())
	r.crash = crash
	r.Run()

	log.Printf("session %s: exit, best score %d", session.ID, session.BestScore())
}

// crashHandler restores the terminal before printing the panic and stack
func crashHandler(screen tcell.Screen) func(any) {
	return func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mKEBAB-ARENA CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}
