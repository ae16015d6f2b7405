package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/web"
)

func newWebCmd() *cobra.Command {
	cfg := web.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Start the HTTP/JSON server",
		Long: `Serve Tetris sessions over HTTP. Clients drive gravity themselves by
sending the tick command every interval_ms.

Endpoints:
  POST   /games?variant=&seed=            - Create a game
  GET    /games/{id}                      - Read a snapshot
  DELETE /games/{id}                      - End a game
  POST   /games/{id}/commands/{command}   - Apply a command
  GET    /healthz                         - Liveness check

Commands: move-left, move-right, rotate, rotate-ccw, soft-drop, hard-drop,
tick, restart.

Examples:
  tetris web
  tetris web --addr 127.0.0.1:9000 --max-games 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := tetris.LoadSettings(flagConfig, flagDifficulty)
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return web.ListenAndServe(ctx, cfg, web.NewService(settings), log.Default())
		},
	}

	cmd.Flags().StringVar(&cfg.Address, "addr", cfg.Address, "HTTP listen address (host:port)")
	cmd.Flags().DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "Drop games untouched for this long (0 = never)")
	cmd.Flags().IntVar(&cfg.MaxGames, "max-games", cfg.MaxGames, "Maximum number of live games")
	return cmd
}
