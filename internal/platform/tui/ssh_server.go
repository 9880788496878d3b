package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tapsnake/internal/audio"
	"github.com/vovakirdan/tapsnake/internal/config"
	"github.com/vovakirdan/tapsnake/internal/core"
	"github.com/vovakirdan/tapsnake/internal/games/snake"
	"github.com/vovakirdan/tapsnake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tapsnake/host_key.
	HostKeyPath string

	// DBPath is the path to the session journal. Empty disables it.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is applied to every session.
	Game config.Config

	// Logger receives server and per-session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.tapsnake/sessions.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultConfig(),
	}
}

// SSHServer serves one independent game per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tapsnake-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	if cfg.DBPath != "" {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open session journal", "error", err)
			// Continue without storage
		} else {
			srv.store = store
		}
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tapsnake", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: logging wraps the PTY check, which
	// wraps the game.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game, loop and surface for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	logger := s.logger.With("user", sshSession.User(), "remote", sshSession.RemoteAddr().String())
	started := time.Now()

	// One row is kept for the help footer.
	cfg := core.RuntimeConfig{
		ScreenW:   pty.Window.Width,
		ScreenH:   pty.Window.Height - 1,
		FrameRate: s.config.Game.Render.FrameRate,
		Seed:      started.UnixNano(),
	}

	// The speaker belongs to the server host, so remote games are silent.
	game, err := snake.New(cfg, s.config.Game.GameOptions(audio.Nop{}))
	if err != nil {
		logger.Warn("cannot start game", "error", err, "width", pty.Window.Width, "height", pty.Window.Height)
		wish.Fatalln(sshSession, fmt.Sprintf("tapsnake: terminal %dx%d is too small", pty.Window.Width, pty.Window.Height))
		return nil, nil
	}

	surface := NewSurface(cfg.ScreenW, cfg.ScreenH, game.Grid().BlockSize)
	loop := snake.NewLoop(game, surface, snake.LoopOptions{
		FrameRate: cfg.FrameRate,
		Logger:    logger,
	})
	if err := loop.Start(sshSession.Context()); err != nil {
		logger.Error("cannot start loop", "error", err)
		return nil, nil
	}

	go s.endSession(sshSession, game, loop, surface, started, logger)

	model := NewModel(game, loop, surface, logger)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// endSession waits for the session to close, stops its loop and writes
// the journal entry.
func (s *SSHServer) endSession(sshSession ssh.Session, game *snake.Game, loop *snake.Loop, surface *Surface, started time.Time, logger *log.Logger) {
	<-sshSession.Context().Done()
	loop.Stop()
	surface.Close()

	rec := storage.SessionRecord{
		User:        sshSession.User(),
		Remote:      sshSession.RemoteAddr().String(),
		StartedAt:   started,
		EndedAt:     time.Now(),
		GamesPlayed: game.GamesStarted(),
		Ticks:       game.TotalTicks(),
	}
	logger.Info("game session finished", "games", rec.GamesPlayed, "ticks", rec.Ticks, "duration", rec.Duration().Round(time.Second))
	logger.Debug("final game state", "snapshot", game.Snapshot())

	if s.store == nil {
		return
	}
	if _, err := s.store.RecordSession(rec); err != nil {
		logger.Warn("session not journaled", "error", err)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
