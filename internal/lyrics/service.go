package lyrics

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/logger"
	"github.com/sukalov/lyricsdivision/internal/utils"
)

// FileName returns the lyrics file name for a song title
func FileName(songTitle string) string {
	return "Lyrics-" + songTitle + ".txt"
}

// Service resolves songs to lyrics files and builds their schedules
type Service struct {
	dir     string
	builder *division.Builder
}

// NewService creates a lyrics service reading from dir
func NewService(dir string, builder *division.Builder) *Service {
	return &Service{dir: dir, builder: builder}
}

// Path returns where the lyrics of songTitle are expected
func (s *Service) Path(songTitle string) string {
	return filepath.Join(s.dir, FileName(songTitle))
}

// Lines reads the raw lyrics lines of a song
func (s *Service) Lines(songTitle string) ([]string, error) {
	if strings.ContainsAny(songTitle, `/\`) || songTitle == "" {
		return nil, fmt.Errorf("invalid song title %q", songTitle)
	}
	return utils.ReadLines(s.Path(songTitle))
}

// Build reads the lyrics of songTitle and divides them between performers
func (s *Service) Build(songTitle string, performers []division.Performer) (*division.Schedule, error) {
	lines, err := s.Lines(songTitle)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to load lyrics for %s: %v", songTitle, err))
		return nil, err
	}

	schedule, err := s.builder.Build(lines, performers)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", songTitle, err)
	}

	logger.Debug(Summary(schedule))
	logger.Success(fmt.Sprintf("Loaded %d lyrics lines from %s", len(schedule.Lines), FileName(songTitle)))

	return schedule, nil
}

// Summary renders `timing, text` for every line of a schedule
func Summary(schedule *division.Schedule) string {
	var sb strings.Builder
	for _, line := range schedule.Lines {
		fmt.Fprintf(&sb, "%s, %s\n", utils.FormatSeconds(line.Timestamp), line.Text)
	}
	return sb.String()
}
