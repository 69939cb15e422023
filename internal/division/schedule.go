package division

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sukalov/lyricsdivision/internal/logger"
)

// Builder turns raw lyrics lines into a Schedule. It is safe for concurrent use;
// builds are serialized so a seeded builder hands out the same rotations in call order.
type Builder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBuilder creates a builder drawing rotations from rng.
// A nil rng is replaced with one seeded from the clock.
func NewBuilder(rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{rng: rng}
}

// BuildSchedule builds a schedule with a builder seeded from seed
func BuildSchedule(rawLines []string, performers []Performer, seed int64) (*Schedule, error) {
	return NewBuilder(rand.New(rand.NewSource(seed))).Build(rawLines, performers)
}

// Build parses the meta line and every lyric line and lays them out on the timeline.
// Fatal errors return a nil schedule; skipped lines are recorded as diagnostics.
func (b *Builder) Build(rawLines []string, performers []Performer) (*Schedule, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(rawLines) == 0 {
		logger.Error("Meta information not found in the first line.")
		return nil, fmt.Errorf("%w: empty lyrics input", ErrFormat)
	}
	if len(performers) < 2 {
		logger.Error(fmt.Sprintf("Cannot divide parts between %d performers", len(performers)))
		return nil, fmt.Errorf("%w: got %d", ErrDegenerateRotation, len(performers))
	}

	schedule := &Schedule{
		Lines: []Line{{Timestamp: 0, Text: ""}},
	}

	meta, diags, err := ParseMeta(rawLines[0])
	schedule.addDiagnostics(diags...)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to parse meta line: %v", err))
		return nil, err
	}
	schedule.Meta = meta

	logger.Debug(fmt.Sprintf("Parsed BPM: %d beats/min, beat: %g count/bar, intro: %d beats, clock interval: %.2f seconds",
		meta.BPM, meta.BeatsPerBar, meta.IntroBeats, meta.SecondsPerBeat()))

	clock := meta.IntroSeconds()
	for i, raw := range rawLines[1:] {
		lineNumber := i + 2

		parsed, err := ParseLine(raw)
		if err != nil {
			schedule.addDiagnostics(Diagnostic{Kind: DiagMalformedLine, Line: lineNumber, Message: err.Error()})
			continue
		}

		rotation, err := NewRotation(b.rng, len(performers))
		if err != nil {
			return nil, err
		}

		parts, err := AssignParts(meta, parsed, clock, performers, rotation)
		if err != nil {
			return nil, err
		}

		schedule.Lines = append(schedule.Lines, Line{
			Timestamp: clock,
			Text:      parsed.Text,
			Parts:     parts,
		})

		clock += meta.BarSeconds(parsed.BarCount)
	}

	schedule.Lines = append(schedule.Lines,
		Line{Timestamp: clock, Text: EndMarker},
		Line{Timestamp: clock + TrailerGap, Text: ""},
	)

	logger.Info(fmt.Sprintf("Built schedule: %d lines, %d parts, %d diagnostics",
		len(schedule.Lines), schedule.PartCount(), len(schedule.Diagnostics)))

	return schedule, nil
}

func (s *Schedule) addDiagnostics(diags ...Diagnostic) {
	for _, d := range diags {
		logger.Warn(d.String())
		s.Diagnostics = append(s.Diagnostics, d)
	}
}
