// railgrid is a terminal rail network simulator: paint track with the
// mouse, toggle switches, and watch trains navigate the grid.
//
// Usage:
//
//	railgrid list              - List available scenarios
//	railgrid play [scenario]   - Play a scenario
//	railgrid serve             - Start SSH server for remote play
//	railgrid stats             - Show recorded session statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.railgrid/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "railgrid",
	Short: "railgrid - Build rail networks in your terminal",
	Long: `railgrid is a terminal-based rail network simulator. Drag the mouse
to paint track, bulldoze mistakes, toggle switches, and keep the
trains moving.

Available commands:
  list     - Show all available scenarios
  play     - Play a scenario
  serve    - Start SSH server for remote play
  stats    - View recorded session statistics

Examples:
  railgrid list
  railgrid play loop
  railgrid play yard --seed 7
  railgrid serve --ssh :2222
  railgrid stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.railgrid/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
