package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sukalov/lyricsdivision/internal/config"
	"github.com/sukalov/lyricsdivision/internal/lyrics"
)

func buildCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "build <song title>",
		Short: "Builds the part division of a song",
		Long:  `Reads Lyrics-<song title>.txt from the lyrics dir and writes the XML snapshot and part logs to the output dir.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			runner, cleanup, err := newRunner(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := runner.Build(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, lyrics.Summary(res.Schedule))
			for _, d := range res.Schedule.Diagnostics {
				fmt.Fprintf(out, "warning: %s\n", d)
			}
			for _, f := range res.Files {
				fmt.Fprintf(out, "wrote %s\n", f)
			}
			if res.SnapshotID != "" {
				fmt.Fprintf(out, "snapshot %s\n", res.SnapshotID)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for performer rotations")
	return cmd
}
