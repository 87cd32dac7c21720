package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/railgrid/railgrid/internal/storage"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded session statistics",
	Long: `Display recent play sessions and per-scenario totals.

Examples:
  railgrid stats
  railgrid stats --limit 5`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "How many recent sessions to show")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'railgrid play' to record the first one.")
		return
	}

	fmt.Println("Recent sessions:")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-8s  %-6s  %-7s  %s\n",
		"Scenario", "Ticks", "Painted", "Dozed", "Blocked", "Date")
	fmt.Printf("  %-10s  %-8s  %-8s  %-6s  %-7s  %s\n",
		"--------", "-----", "-------", "-----", "-------", "----")

	for _, s := range sessions {
		dateStr := s.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10s  %-8d  %-8d  %-6d  %-7d  %s\n",
			s.Scenario, s.Ticks, s.Painted, s.Bulldozed, s.BlockEvents, dateStr)
	}

	stats, err := store.StatsByScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Totals by scenario:")
	fmt.Println()
	fmt.Printf("  %-10s  %-9s  %-11s  %s\n", "Scenario", "Sessions", "Total ticks", "Last played")

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		st := stats[name]
		fmt.Printf("  %-10s  %-9d  %-11d  %s\n",
			st.Scenario, st.Sessions, st.TotalTicks, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
