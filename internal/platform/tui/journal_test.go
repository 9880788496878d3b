package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tapsnake/internal/storage"
)

func TestRenderJournalEmpty(t *testing.T) {
	out := ansi.Strip(RenderJournal(nil, storage.JournalStats{}))
	if !strings.Contains(out, "No sessions recorded yet.") {
		t.Errorf("RenderJournal() = %q", out)
	}
}

func TestRenderJournalRows(t *testing.T) {
	end := time.Date(2026, 3, 14, 15, 9, 0, 0, time.Local)
	records := []storage.SessionRecord{
		{User: "eva", Remote: "10.0.0.1:4000", StartedAt: end.Add(-90 * time.Second), EndedAt: end, GamesPlayed: 3},
		{User: "jorge", Remote: "10.0.0.2:4000", StartedAt: end.Add(-time.Hour), EndedAt: end.Add(-time.Minute), GamesPlayed: 12},
	}
	stats := storage.JournalStats{Sessions: 2, Users: 2, GamesPlayed: 15, Ticks: 9000, LastSeen: end}

	out := ansi.Strip(RenderJournal(records, stats))
	for _, want := range []string{"eva", "jorge", "10.0.0.1:4000", "1m30s", "Mar 14 15:09", "2 sessions from 2 users, 15 games"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
