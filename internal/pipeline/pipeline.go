// Package pipeline runs a full division pass for a song: read lyrics, divide parts
// between the roster, write the exports and hand the result to the stores.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/export"
	"github.com/sukalov/lyricsdivision/internal/logger"
	"github.com/sukalov/lyricsdivision/internal/lyrics"
	"github.com/sukalov/lyricsdivision/internal/roles"
	"github.com/sukalov/lyricsdivision/internal/utils/e"
)

// Cache is where finished schedules are kept for quick lookups
type Cache interface {
	Get(ctx context.Context, song string) (*division.Schedule, bool, error)
	Set(ctx context.Context, song string, schedule *division.Schedule, ttl time.Duration) error
	IncrementBuildCount(ctx context.Context, song string) error
}

// SnapshotSaver archives every build
type SnapshotSaver interface {
	Save(ctx context.Context, song string, schedule *division.Schedule) (string, error)
}

// Result of one build
type Result struct {
	Song       string
	Schedule   *division.Schedule
	SnapshotID string
	Files      []string
}

type Runner struct {
	lyrics    *lyrics.Service
	roster    *roles.Roster
	outputDir string
	cache     Cache
	snapshots SnapshotSaver
	cacheTTL  time.Duration
}

type Option func(*Runner)

// WithOutputDir writes the XML snapshot and the logs of every build to dir
func WithOutputDir(dir string) Option {
	return func(r *Runner) { r.outputDir = dir }
}

func WithCache(cache Cache, ttl time.Duration) Option {
	return func(r *Runner) {
		r.cache = cache
		r.cacheTTL = ttl
	}
}

func WithSnapshots(snapshots SnapshotSaver) Option {
	return func(r *Runner) { r.snapshots = snapshots }
}

func NewRunner(service *lyrics.Service, roster *roles.Roster, opts ...Option) *Runner {
	r := &Runner{lyrics: service, roster: roster}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Build divides song and stores the result everywhere configured
func (r *Runner) Build(ctx context.Context, song string) (res *Result, err error) {
	defer e.WrapIfErr(fmt.Sprintf("build %s", song), &err)

	schedule, err := r.lyrics.Build(song, r.roster.Performers)
	if err != nil {
		return nil, err
	}

	res = &Result{Song: song, Schedule: schedule}

	if r.outputDir != "" {
		files, err := r.writeExports(song, schedule)
		if err != nil {
			return nil, err
		}
		res.Files = files
	}

	if r.snapshots != nil {
		id, err := r.snapshots.Save(ctx, song, schedule)
		if err != nil {
			return nil, err
		}
		res.SnapshotID = id
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, song, schedule, r.cacheTTL); err != nil {
			logger.Error(fmt.Sprintf("Failed to cache schedule of %s: %v", song, err))
		} else if err := r.cache.IncrementBuildCount(ctx, song); err != nil {
			logger.Error(err.Error())
		}
	}

	return res, nil
}

// Schedule returns the cached schedule of song, building it on a miss
func (r *Runner) Schedule(ctx context.Context, song string) (*division.Schedule, error) {
	if r.cache != nil {
		schedule, ok, err := r.cache.Get(ctx, song)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to read cached schedule of %s: %v", song, err))
		} else if ok {
			return schedule, nil
		}
	}

	res, err := r.Build(ctx, song)
	if err != nil {
		return nil, err
	}
	return res.Schedule, nil
}

func (r *Runner) writeExports(song string, schedule *division.Schedule) ([]string, error) {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	outputs := []struct {
		name  string
		write func(io.Writer, *division.Schedule) error
	}{
		{"LyricsDivision-" + song + ".xml", export.WriteXML},
		{"ForHumanCheck-" + song + ".txt", export.WriteColorLog},
		{"CorrectPart-" + song + ".txt", export.WritePartDivision},
	}

	var files []string
	for _, out := range outputs {
		path := filepath.Join(r.outputDir, out.name)
		if err := writeFile(path, schedule, out.write); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	logger.Info(fmt.Sprintf("Saved %d exports of %s to %s", len(files), song, r.outputDir))
	return files, nil
}

func writeFile(path string, schedule *division.Schedule, write func(io.Writer, *division.Schedule) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f, schedule)
}
