package division

import "fmt"

// AssignParts computes the timestamp and performer of every word slot in a line.
// The word offset is ratio / (beat * bars) added to lineStart, the same scale the
// lyrics files were timed against.
//
// rotation must be non-empty and hold indices into performers, and the line needs
// at least one word per ratio; ParseLine and NewRotation guarantee both.
func AssignParts(meta Meta, parsed ParsedLine, lineStart float64, performers []Performer, rotation []int) ([]Part, error) {
	if len(rotation) == 0 {
		return nil, fmt.Errorf("%w: empty rotation", ErrDegenerateRotation)
	}

	words := parsed.Words()
	if len(words) < len(parsed.Ratios) {
		return nil, fmt.Errorf("%w: %d ratios for %d words in %q", ErrMalformedLine, len(parsed.Ratios), len(words), parsed.Text)
	}

	for _, idx := range rotation {
		if idx < 0 || idx >= len(performers) {
			return nil, fmt.Errorf("%w: performer %d of %d", ErrDegenerateRotation, idx, len(performers))
		}
	}

	totalBeats := meta.BeatsPerBar * float64(parsed.BarCount)

	parts := make([]Part, 0, len(parsed.Ratios))
	index := 0
	for i, ratio := range parsed.Ratios {
		if index >= len(rotation) {
			index = 0
		}

		parts = append(parts, Part{
			Timestamp: lineStart + float64(ratio)/totalBeats,
			Word:      words[i],
			Performer: performers[rotation[index]],
		})
		index++
	}

	return parts, nil
}
