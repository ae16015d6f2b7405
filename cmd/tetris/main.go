// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Open the variant menu
//	tetris list              - List available variants
//	tetris play [variant]    - Play a variant (default: tetris)
//	tetris serve             - Start the SSH server for remote play
//	tetris web               - Start the HTTP/JSON server
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Use a specific YAML configuration
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	code := 0
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		code = 1
	}
	closeLog()
	os.Exit(code)
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tetris",
		Short: "Tetris - falling blocks in your terminal",
		Long: `Tetris for the terminal. Play locally, host games over SSH, or drive
sessions over HTTP.

Examples:
  tetris
  tetris play
  tetris play tetris_classic --difficulty hard
  tetris serve --ssh :2222
  tetris web --addr :8080
  tetris config --difficulty easy`,
		Annotations:       map[string]string{interactive: "true"},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: applyGlobalFlags,
		RunE:              runMenu,
	}

	pf := root.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to a tetris.yaml configuration")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newListCmd(), newPlayCmd(), newServeCmd(), newWebCmd(), newConfigCmd())
	return root
}

// applyGlobalFlags validates the shared flags and hands them to the game
// package before any game is created.
func applyGlobalFlags(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if err := setupLogger(cmd, flagLogLevel, flagLogFile); err != nil {
		return err
	}
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
	return nil
}
