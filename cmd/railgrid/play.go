package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/railgrid/railgrid/internal/config"
	"github.com/railgrid/railgrid/internal/core"
	"github.com/railgrid/railgrid/internal/platform/tui"
	"github.com/railgrid/railgrid/internal/scenario"
	"github.com/railgrid/railgrid/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Play a scenario",
	Long: `Start the simulator with the given scenario. When omitted, the
scenario from the config file is used.

Controls:
  Mouse drag - Apply the active tool (paint track in build mode)
  1/2/3/4    - Pan / Build / Erase / Switch mode
  Arrows/WASD- Pan the viewport
  P/Space    - Pause
  R          - Reset the scenario
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  railgrid play
  railgrid play crossing
  railgrid play yard --seed 7
  railgrid play loop --config ./my-railgrid.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	simCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	scenName := simCfg.Game.Scenario
	if len(args) == 1 {
		scenName = args[0]
	}
	if !scenario.Exists(scenName) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenName)
		fmt.Fprintln(os.Stderr, "Run 'railgrid list' to see available scenarios.")
		os.Exit(1)
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = simCfg.Game.Seed
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the simulator still works
		store = nil
	}

	runErr := tui.Run(store, cfg, simCfg, scenName)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}
