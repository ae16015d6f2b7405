package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

func newServeCmd() *cobra.Command {
	defaults := tui.DefaultSSHServerConfig()
	var (
		addr    string
		hostKey string
		idle    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the SSH server",
		Long: `Start an SSH server that lets users connect and play.

Each connection gets its own session with the variant menu. Games are never
shared between connections and results are kept only for the connection.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, generates a key at ~/.tetris/host_key

Examples:
  tetris serve
  tetris serve --ssh :2222
  tetris serve --host-key ./my_host_key --idle-timeout 10m

Users can connect with:
  ssh localhost -p 23234`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := tetris.LoadSettings(flagConfig, flagDifficulty); err != nil {
				return err
			}

			server, err := tui.NewSSHServer(tui.SSHServerConfig{
				Address:     addr,
				HostKeyPath: hostKey,
				IdleTimeout: idle,
				TickRate:    flagFPS,
				Seed:        flagSeed,
			}, log.Default())
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "ssh", defaults.Address, "SSH server address (host:port)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to host key file (generated if not specified)")
	cmd.Flags().DurationVar(&idle, "idle-timeout", defaults.IdleTimeout, "Disconnect idle sessions after this long")
	return cmd
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
