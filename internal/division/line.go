package division

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// e.g. 2[0,1,3,4]Happy birthday to you
var linePattern = regexp.MustCompile(`(\d+)\[([0-9,]+)\](.*)`)

// ParsedLine is a lyric line split into its bar count, word offsets and text
type ParsedLine struct {
	BarCount int
	Ratios   []int
	Text     string
}

// Words splits the text into word slots on single spaces
func (p ParsedLine) Words() []string {
	return strings.Split(p.Text, " ")
}

// ParseLine parses a `bar[ratio,...]text` lyric line
func ParseLine(line string) (ParsedLine, error) {
	match := linePattern.FindStringSubmatch(line)
	if match == nil {
		return ParsedLine{}, fmt.Errorf("%w: expected a line like \"2[0,1,3,4]Happy birthday to you\", got %q", ErrMalformedLine, line)
	}

	barCount, err := strconv.Atoi(match[1])
	if err != nil || barCount <= 0 {
		return ParsedLine{}, fmt.Errorf("%w: bar count must be a positive integer, got %q", ErrMalformedLine, match[1])
	}

	rawRatios := strings.Split(match[2], ",")
	ratios := make([]int, 0, len(rawRatios))
	for _, raw := range rawRatios {
		ratio, err := strconv.Atoi(raw)
		if err != nil {
			return ParsedLine{}, fmt.Errorf("%w: bad ratio %q in [%s]", ErrMalformedLine, raw, match[2])
		}
		ratios = append(ratios, ratio)
	}

	parsed := ParsedLine{
		BarCount: barCount,
		Ratios:   ratios,
		Text:     strings.TrimSpace(match[3]),
	}

	if parsed.Text == "" {
		return ParsedLine{}, fmt.Errorf("%w: no lyrics after [%s]", ErrMalformedLine, match[2])
	}
	if words := parsed.Words(); len(words) != len(ratios) {
		return ParsedLine{}, fmt.Errorf("%w: %d ratios for %d words in %q", ErrMalformedLine, len(ratios), len(words), parsed.Text)
	}

	return parsed, nil
}
