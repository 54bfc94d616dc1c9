package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vonsh/internal/audio"
	"github.com/vovakirdan/vonsh/internal/config"
	"github.com/vovakirdan/vonsh/internal/core"
	"github.com/vovakirdan/vonsh/internal/games/vonsh"
	"github.com/vovakirdan/vonsh/internal/registry"
	"github.com/vovakirdan/vonsh/internal/storage"
)

var (
	flagFrontend string
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play vonsh",
	Long: `Start the game on the title menu.

Controls (defaults, rebind them in Options):
  Arrows     - Steer
  Space      - Pause/Resume
  Enter      - Select
  Esc        - Back/Quit
  Ctrl+C     - Quit

Examples:
  vonsh play
  vonsh play --frontend window
  vonsh play --mute --seed 42
  vonsh play --config ./my-vonsh.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend to run (see 'vonsh list')")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the audio device")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'vonsh list' to see available frontends", flagFrontend)
	}
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	settings, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("settings loaded", "source", src.Kind, "path", src.Path)

	// Get terminal size; the frontend corrects it on its first resize
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed

	// Open score storage
	var scores vonsh.HighScores
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, keeping scores in memory", "error", err)
		scores = storage.NewMemory()
	} else {
		defer store.Close()
		scores = store
	}

	var sound vonsh.Audio = audio.Silent{}
	if !flagMute {
		synth, err := audio.NewSynth()
		if err != nil {
			return fmt.Errorf("%w (use --mute to play without sound)", err)
		}
		defer synth.Close()
		sound = synth
	}

	restore, err := logToFile(logger)
	if err != nil {
		logger.Warn("logging to stderr", "error", err)
	} else {
		defer restore()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := registry.Env{
		Options: vonsh.Options{
			Settings: settings,
			Scores:   scores,
			Audio:    sound,
			Sink:     config.NewFileStore(src.SavePath()),
			Seed:     cfg.ResolveSeed(),
			Version:  version,
			Logger:   logger,
		},
		Runtime: cfg,
		Logger:  logger,
	}
	logger.Info("starting", "frontend", frontend.ID(), "seed", env.Options.Seed)
	return frontend.Run(ctx, env)
}
