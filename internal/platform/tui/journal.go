package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tapsnake/internal/storage"
)

// RenderJournal renders the SSH session journal as a static table with a
// summary line, for printing to stdout.
func RenderJournal(records []storage.SessionRecord, stats storage.JournalStats) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SESSIONS"))
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString("No sessions recorded yet.\n")
		return b.String()
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(journalTable(records).View()))
	b.WriteString("\n")

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	summary := fmt.Sprintf("%d sessions from %d users, %d games, %d ticks",
		stats.Sessions, stats.Users, stats.GamesPlayed, stats.Ticks)
	if !stats.LastSeen.IsZero() {
		summary += ", last seen " + stats.LastSeen.Format("Jan 02 15:04")
	}
	b.WriteString(summaryStyle.Render(summary))
	b.WriteString("\n")

	return b.String()
}

func journalTable(records []storage.SessionRecord) table.Model {
	columns := []table.Column{
		{Title: "User", Width: 12},
		{Title: "Remote", Width: 22},
		{Title: "Ended", Width: 13},
		{Title: "Length", Width: 9},
		{Title: "Games", Width: 6},
	}

	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.User,
			r.Remote,
			r.EndedAt.Format("Jan 02 15:04"),
			r.Duration().Round(time.Second).String(),
			fmt.Sprintf("%d", r.GamesPlayed),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header row plus its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable in a printed table.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}
