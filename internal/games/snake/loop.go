package snake

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tapsnake/internal/core"
)

// ErrLoopRunning is returned by Start when the loop goroutine is active.
var ErrLoopRunning = errors.New("snake: loop already running")

// DefaultJoinTimeout bounds how long Stop waits for the loop goroutine.
const DefaultJoinTimeout = 2 * time.Second

// LoopOptions configures a Loop.
type LoopOptions struct {
	FrameRate   int           // Iterations per second, 0 means unpaced
	JoinTimeout time.Duration // 0 uses DefaultJoinTimeout
	Logger      *log.Logger   // nil discards
}

// Loop drives one Game on its own goroutine: every iteration steps the
// simulation and draws a frame.
type Loop struct {
	game    *Game
	surface core.Surface
	opts    LoopOptions
	logger  *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewLoop creates a stopped loop for game rendering to surface.
func NewLoop(game *Game, surface core.Surface, opts LoopOptions) *Loop {
	if opts.JoinTimeout <= 0 {
		opts.JoinTimeout = DefaultJoinTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:    game,
		surface: surface,
		opts:    opts,
		logger:  logger,
	}
}

// Start spawns the loop goroutine. It runs until ctx is cancelled or Stop
// is called.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done != nil {
		return ErrLoopRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done

	l.logger.Debug("loop started", "frame_rate", l.opts.FrameRate, "grid", l.game.Grid())
	go l.run(ctx, done)
	return nil
}

// Stop cancels the loop and waits for its goroutine to exit. A join that
// takes longer than the configured timeout is logged and abandoned.
// Calling Stop on a stopped loop does nothing.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if done == nil {
		return
	}
	cancel()

	select {
	case <-done:
		l.logger.Debug("loop stopped")
	case <-time.After(l.opts.JoinTimeout):
		l.logger.Warn("loop did not stop in time", "timeout", l.opts.JoinTimeout)
	}
}

// Running reports whether Start was called without a matching Stop.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done != nil
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	var frame *time.Ticker
	if l.opts.FrameRate > 0 {
		frame = time.NewTicker(time.Second / time.Duration(l.opts.FrameRate))
		defer frame.Stop()
	}

	for {
		if ctx.Err() != nil {
			return
		}

		before := l.game.State()
		if _, err := l.game.Step(time.Now()); err != nil {
			l.logger.Error("step failed", "error", err, "state", l.game.State())
		}
		if after := l.game.State(); after != before {
			l.logger.Info("state changed", "from", before, "to", after, "score", l.game.Score())
		}
		l.game.Draw(l.surface)

		if frame == nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-frame.C:
		}
	}
}
