package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration games would use, after applying --config and
--difficulty, as YAML. The first line names its source.

Search order: --config, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml,
built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	source := config.ResolveTetrisPath(flagConfig)

	var data []byte
	if source == "" && preset == config.DifficultyNormal {
		// Untouched defaults: print the commented file so it can be copied.
		data = config.DefaultTetrisYAML()
	} else if data, err = config.MarshalTetris(cfg); err != nil {
		return err
	}

	if source == "" {
		source = "built-in defaults"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s, difficulty: %s\n", source, preset)
	_, err = out.Write(data)
	return err
}
