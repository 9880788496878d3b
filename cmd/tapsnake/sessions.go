package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tapsnake/internal/platform/tui"
	"github.com/vovakirdan/tapsnake/internal/storage"
)

var (
	flagSessionsDB    string
	flagSessionsLimit int
	flagPruneDays     int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show the SSH session journal",
	Long: `Display the most recent SSH sessions recorded by 'tapsnake serve'.

Examples:
  tapsnake sessions
  tapsnake sessions --limit 50
  tapsnake sessions --prune-days 30   # Drop sessions older than 30 days first`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&flagSessionsDB, "db", tui.DefaultSSHServerConfig().DBPath, "Path to session journal database")
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 20, "Number of sessions to show")
	sessionsCmd.Flags().IntVar(&flagPruneDays, "prune-days", 0, "Delete sessions that ended more than this many days ago (0 = keep all)")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagSessionsDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPruneDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -flagPruneDays)
		n, err := store.Prune(cutoff)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error pruning sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Pruned %d sessions\n\n", n)
	}

	records, err := store.RecentSessions(flagSessionsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving journal stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(tui.RenderJournal(records, stats))
}
