package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/beatfield/audio"
	"github.com/lixenwraith/beatfield/config"
	"github.com/lixenwraith/beatfield/engine"
)

var (
	audioFlag  = flag.String("audio", "", "Audio file to react to (wav or mp3); empty runs the synthetic path")
	configFlag = flag.String("config", "", "Optional config file overriding simulation defaults")
	logFlag    = flag.String("log", "beatfield.log", "Log file path; empty disables logging")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log := setupLogger()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	var screen tcell.Screen

	// Panic recovery: restore the terminal before printing the trace so
	// it is readable after a crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nBEATFIELD CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Audio before the screen: a decode failure should print normally,
	// and a missing source just means the synthetic energy path
	opts := engine.Options{Seed: cfg.Simulation.Seed}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if *audioFlag != "" {
		player, err := audio.NewPlayer(*audioFlag, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Audio unavailable: %v (continuing with synthetic energies)\n", err)
			log.WithError(err).Warn("audio source unavailable, synthetic path active")
		} else {
			defer player.Close()
			player.Start(cfg.Audio.Volume)
			opts.Source = player.Ring()
		}
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	w, h := engine.WorldSize(screen)
	opts.Physics = cfg.PhysicsConfig(w, h)
	opts.Counts = cfg.Counts()

	game, err := engine.NewGame(screen, opts, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
		os.Exit(1)
	}

	if err := game.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger writes to the log file; the terminal belongs to tcell once
// the screen is up
func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if *debugFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Log file unavailable: %v (logging disabled)\n", err)
			return log
		}
		log.SetOutput(f)
	}
	return log
}
