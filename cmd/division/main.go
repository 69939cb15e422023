package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/sukalov/lyricsdivision/internal/config"
	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/logger"
	"github.com/sukalov/lyricsdivision/internal/lyrics"
	"github.com/sukalov/lyricsdivision/internal/pipeline"
	"github.com/sukalov/lyricsdivision/internal/roles"
	"github.com/sukalov/lyricsdivision/internal/store"
)

const cacheTTL = 24 * time.Hour

var configPath string

var rootCmd = &cobra.Command{
	Use:   "division",
	Short: "Divides song lyrics between performers",
	Long:  `Reads a timed lyrics file and assigns every word to a performer at its playback time.`,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.AddCommand(buildCmd(), draftCmd(), botCmd())
	cobra.CheckErr(rootCmd.Execute())
}

// newRunner wires the lyrics service, roster and whichever stores are configured.
// The returned cleanup closes the stores.
func newRunner(ctx context.Context, cfg *config.Config, withExports bool) (*pipeline.Runner, func(), error) {
	roster, _, err := roles.Load(cfg.RoleFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load roles: %w", err)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	service := lyrics.NewService(cfg.LyricsDir, division.NewBuilder(rng))

	var opts []pipeline.Option
	var closers []func() error

	if withExports {
		opts = append(opts, pipeline.WithOutputDir(cfg.OutputDir))
	}

	if cfg.DatabaseURL != "" {
		snapshots, err := store.OpenSnapshotStore(ctx, cfg.DatabaseURL, cfg.DatabaseAuthToken)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, pipeline.WithSnapshots(snapshots))
		closers = append(closers, snapshots.Close)
	}

	if cfg.RedisURL != "" {
		cache, err := store.NewScheduleCache(cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, pipeline.WithCache(cache, cacheTTL))
		closers = append(closers, cache.Close)
	}

	cleanup := func() {
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				logger.Error(fmt.Sprintf("error closing store: %v", err))
			}
		}
	}

	return pipeline.NewRunner(service, roster, opts...), cleanup, nil
}
