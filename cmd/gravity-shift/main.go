package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-shift/config"
	"github.com/lixenwraith/gravity-shift/engine"
	"github.com/lixenwraith/gravity-shift/status"
	"github.com/lixenwraith/gravity-shift/store"
	"github.com/lixenwraith/gravity-shift/terminal"
	"github.com/lixenwraith/gravity-shift/vmath"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	envFlag    = flag.String("env", "", "dotenv file with GRAVITY_SHIFT_* overrides")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/gravity-shift.log and show metrics")
	seedFlag   = flag.Uint64("seed", 0, "random seed, 0 for time based")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		log.Printf("config: %v; using defaults", err)
	}
	palette, err := cfg.ResolvePalette()
	if err != nil {
		log.Printf("palette: %v", err)
	}

	storePath := cfg.Host.StorePath
	if storePath == "" {
		storePath = store.DefaultPath()
	}
	prefs, err := store.Open(storePath)
	if err != nil {
		log.Printf("preferences: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Host.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: seed %d, tick %v, prefs %s", seed, cfg.Host.TickInterval(), prefs.Path())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal on exit, and before reporting a crash
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRAVITY-SHIFT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	reg := status.NewRegistry()
	eng := engine.New(cfg.Tuning, engine.WithRand(vmath.NewFastRand(seed)))
	sched := engine.NewScheduler(eng, engine.NewTickerSource(cfg.Host.TickInterval()), reg)
	sched.Start()
	defer sched.Stop()

	app := terminal.NewApp(screen, sched, terminal.Options{
		Palette:       palette,
		Prefs:         prefs,
		Registry:      reg,
		UnitsPerPixel: cfg.Host.UnitsPerPixel,
		Debug:         *debugFlag,
		Seed:          seed,
	})
	app.Run()

	log.Printf("exit: high score %d", prefs.HighScore())
}
