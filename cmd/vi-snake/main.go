package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/persistence"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

var (
	configPath  = flag.String("config", "vi-snake.toml", "Path to TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug log to "+constants.LogDir+"/"+constants.LogFileName)
	seedFlag    = flag.Int64("seed", 0, "Random seed for food placement (0 uses the clock)")
	metricsAddr = flag.String("metrics", "", "Serve Prometheus metrics on this address, overrides config")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	logFile := setupLogging(constants.LogDir, *debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	keys, err := loadKeyTable(cfg.KeymapPath())
	if err != nil {
		return err
	}

	// A damaged score file still yields a usable manager
	store, err := persistence.Open(cfg.Storage.DataDir)
	if err != nil {
		log.Printf("score file %s: %v", store.FilePath(), err)
	}

	reg := status.NewRegistry()
	addr := cfg.Metrics.Listen
	if *metricsAddr != "" {
		addr = *metricsAddr
	}
	if addr != "" {
		stop := startMetricsServer(addr, reg)
		defer stop()
	}

	opts := []engine.Option{engine.WithStatus(reg)}
	if *seedFlag != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewSource(*seedFlag))))
	}
	game := engine.NewGame(cfg.EngineConfig(), store, opts...)

	sounds := audio.NewSoundManager(cfg.AudioSettings())
	if err := sounds.Initialize(); err != nil && !errors.Is(err, audio.ErrAudioDisabled) {
		log.Printf("audio unavailable: %v", err)
	}
	defer sounds.Cleanup()
	if *muteFlag && !sounds.IsMuted() {
		sounds.ToggleMute()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	clock := engine.NewPausableClock(nil)
	scheduler, updates := engine.NewClockScheduler(game, clock, reg)

	a := &app{
		game:      game,
		scheduler: scheduler,
		sounds:    sounds,
		keys:      keys,
		history:   store,
	}
	scheduler.SetTickHandler(a.onTick)
	scheduler.Start()
	defer scheduler.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { screen.ChannelEvents(events, quit) })

	renderer := render.NewTerminalRenderer(screen)
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.RenderFrame(a.frame())
	log.Printf("vi-snake started: %dx%d board", cfg.Game.TileCount, cfg.Game.TileCount)

	dirty := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev) {
					return nil
				}
				dirty = true
			case *tcell.EventResize:
				screen.Sync()
				dirty = true
			}

		case <-updates:
			dirty = true

		case <-frameTicker.C:
			// The play clock advances between ticks
			if dirty || game.Phase() == engine.PhaseRunning {
				renderer.RenderFrame(a.frame())
				dirty = false
			}
		}
	}
}

// loadKeyTable merges an optional keymap file over the default bindings
func loadKeyTable(path string) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("keymap %s not found, using defaults", path)
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(base, override), nil
}
