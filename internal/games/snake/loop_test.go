package snake

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/tapsnake/internal/core"
)

type nopCanvas struct{}

func (nopCanvas) Size() (int, int) { return 10, 10 }
func (nopCanvas) DrawBackground() {}
func (nopCanvas) DrawSprite(core.Sprite, int, int) {}
func (nopCanvas) DrawText(string, int, int, core.TextStyle) {}
func (nopCanvas) MeasureText(text string, _ core.TextStyle) int { return len(text) }
func (nopCanvas) FillRect(core.Rect, core.TextStyle) {}

// countingSurface is safe to read while the loop goroutine draws.
type countingSurface struct {
	frames atomic.Int64
}

func (s *countingSurface) IsReady() bool { return true }
func (s *countingSurface) BeginFrame() core.Canvas { return nopCanvas{} }
func (s *countingSurface) EndFrame(core.Canvas) { s.frames.Add(1) }

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestLoopRendersAndStops(t *testing.T) {
	g := newTestGame(t, 1, nil)
	surf := &countingSurface{}
	l := NewLoop(g, surf, LoopOptions{FrameRate: 200})

	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if !l.Running() {
		t.Fatal("Running() = false after Start")
	}

	waitFor(t, "frames before a game", func() bool { return surf.frames.Load() >= 3 })
	if g.State() != StateNotStarted {
		t.Fatalf("State() = %v, expected not-started while only rendering", g.State())
	}

	g.HandlePointer(core.Tap(2, 5))
	waitFor(t, "game start", func() bool { return g.State() == StateRunning })

	l.Stop()
	if l.Running() {
		t.Error("Running() = true after Stop")
	}
	frames := surf.frames.Load()
	time.Sleep(20 * time.Millisecond)
	if surf.frames.Load() != frames {
		t.Error("frames drawn after Stop returned")
	}

	// Idempotent.
	l.Stop()
}

func TestLoopStartTwice(t *testing.T) {
	g := newTestGame(t, 1, nil)
	l := NewLoop(g, &countingSurface{}, LoopOptions{FrameRate: 100})

	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer l.Stop()

	if err := l.Start(context.Background()); !errors.Is(err, ErrLoopRunning) {
		t.Errorf("second Start() = %v, expected ErrLoopRunning", err)
	}
}

func TestLoopRestart(t *testing.T) {
	g := newTestGame(t, 1, nil)
	surf := &countingSurface{}
	l := NewLoop(g, surf, LoopOptions{FrameRate: 200})

	for i := 0; i < 2; i++ {
		if err := l.Start(context.Background()); err != nil {
			t.Fatalf("Start() #%d error: %v", i, err)
		}
		want := surf.frames.Load() + 2
		waitFor(t, "frames", func() bool { return surf.frames.Load() >= want })
		l.Stop()
	}
}

func TestLoopContextCancel(t *testing.T) {
	g := newTestGame(t, 1, nil)
	surf := &countingSurface{}
	l := NewLoop(g, surf, LoopOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	if err := l.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	waitFor(t, "unpaced frames", func() bool { return surf.frames.Load() >= 100 })
	cancel()

	stopped := make(chan struct{})
	go func() {
		l.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop() did not return after the context was cancelled")
	}
}

func TestNewLoopDefaults(t *testing.T) {
	l := NewLoop(newTestGame(t, 1, nil), &countingSurface{}, LoopOptions{})
	if l.opts.JoinTimeout != DefaultJoinTimeout {
		t.Errorf("JoinTimeout = %v, expected %v", l.opts.JoinTimeout, DefaultJoinTimeout)
	}
	if l.logger == nil {
		t.Error("logger should default to a discarding logger")
	}
	if l.Running() {
		t.Error("new loop should not be running")
	}
}
