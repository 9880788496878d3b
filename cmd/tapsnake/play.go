package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tapsnake/internal/audio"
	"github.com/vovakirdan/tapsnake/internal/config"
	"github.com/vovakirdan/tapsnake/internal/core"
	"github.com/vovakirdan/tapsnake/internal/games/snake"
	"github.com/vovakirdan/tapsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local game",
	Long: `Start a game in the current terminal. The terminal must report mouse
clicks; each released click is a tap.

Controls:
  Click left/right half  - Turn counter-clockwise/clockwise
  Click Pause button     - Pause/Resume
  Click anywhere         - Start a new game (when waiting)
  A/D or Left/Right      - Same as tapping the left/right half
  P                      - Same as tapping the Pause button
  Enter/Space            - Same as tapping to start
  Ctrl+S                 - Save a screenshot
  Q/Ctrl+C               - Quit

Examples:
  tapsnake play
  tapsnake play --seed 7
  tapsnake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("tapsnake", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size, the last row is reserved for the help footer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height - 1,
		FrameRate: gameCfg.Render.FrameRate,
		Seed:      seed,
	}

	player := audio.NewPlayer(gameCfg.AudioOptions())
	if err := player.Initialize(); err != nil {
		// Continue without sound - game still works
		logger.Warn("audio unavailable", "error", err)
	}
	defer player.Close()

	game, err := snake.New(cfg, gameCfg.GameOptions(player))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game created", "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH),
		"block", game.Grid().BlockSize, "seed", seed)

	surface := tui.NewSurface(cfg.ScreenW, cfg.ScreenH, game.Grid().BlockSize)
	loop := snake.NewLoop(game, surface, snake.LoopOptions{
		FrameRate: cfg.FrameRate,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, game, loop, surface, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session over", "games", game.GamesStarted(), "ticks", game.TotalTicks())
}
