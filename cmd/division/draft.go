package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/lyrics"
	"github.com/sukalov/lyricsdivision/internal/lyrics/parsers/amdm"
)

func draftCmd() *cobra.Command {
	var (
		title      string
		outputFile string
		bars       int
		meta       division.Meta
	)

	cmd := &cobra.Command{
		Use:   "draft <URL>",
		Short: "Drafts a lyrics file from a chord page",
		Long: `Extracts the lyrics of an amdm.ru chord page and writes a lyrics file with
evenly spaced word timings, ready to be retimed by hand.`,
		Example: "division draft --title Vladimirsky https://amdm.ru/akkordi/mihail_krug/102195/vladimirskiy_tsentral/",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title is required")
			}
			if bars <= 0 {
				return fmt.Errorf("--bars must be positive")
			}
			if outputFile == "" {
				outputFile = lyrics.FileName(title)
			}

			result, err := amdm.NewParser().ExtractLyrics(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("error extracting lyrics: %w", err)
			}

			lines := lyrics.Draft(title, meta, bars, result.Lines)
			if err := os.WriteFile(outputFile, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
				return fmt.Errorf("error saving file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "drafted %d lines to %s\n", len(lines)-1, outputFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "song title")
	cmd.Flags().StringVar(&outputFile, "output", "", "output file (default Lyrics-<title>.txt)")
	cmd.Flags().IntVar(&bars, "bars", 2, "bars per lyric line")
	cmd.Flags().IntVar(&meta.BPM, "bpm", 120, "beats per minute")
	cmd.Flags().Float64Var(&meta.BeatsPerBar, "beat", 4, "beats per bar")
	cmd.Flags().IntVar(&meta.IntroBeats, "intro", 0, "intro length in beats")
	return cmd
}
