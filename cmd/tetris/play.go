package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [variant]",
		Short: "Play a variant",
		Long: `Start playing the given variant (default: tetris).

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Up/W/X       - Rotate clockwise
  Z            - Rotate counter-clockwise
  Down/S       - Soft drop
  Space        - Hard drop
  P            - Pause
  R            - Restart (paused or after game over)
  B/Esc        - Back to the menu (paused or after game over)
  Ctrl+S       - Save a text screenshot to ~/.tetris/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start (1s per row)
  normal - Configured gravity
  hard   - Faster start and steeper speed-up
  fixed  - Gravity never speeds up

Examples:
  tetris play
  tetris play tetris_classic
  tetris play --difficulty hard --seed 42
  tetris play --config ./my-tetris.yaml --log-file tetris.log`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{interactive: "true"},
		RunE:        runPlay,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris.VariantStandard
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'tetris list')", gameID)
	}

	// Surface config mistakes before the alt screen hides them.
	if _, err := tetris.LoadSettings(flagConfig, flagDifficulty); err != nil {
		return err
	}

	cfg := runtimeConfig()
	log.Info("starting game", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)
	return tui.Run(gameID, cfg, log.Default())
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := tetris.LoadSettings(flagConfig, flagDifficulty); err != nil {
		return err
	}
	return tui.RunMenu(runtimeConfig(), log.Default())
}
