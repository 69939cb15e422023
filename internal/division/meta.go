package division

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const metaMarker = "#"

var metaKeyPatterns = map[string]*regexp.Regexp{
	"bpm":   regexp.MustCompile(`bpm\[(\d+)\]`),
	"beat":  regexp.MustCompile(`beat\[(\d+(?:\.\d+)?)\]`),
	"intro": regexp.MustCompile(`intro\[(\d+)\]`),
}

// ParseMeta reads bpm, beat and intro from the first lyrics line.
// Keys that are missing default to 0 and are reported as diagnostics.
func ParseMeta(line string) (Meta, []Diagnostic, error) {
	line = strings.TrimPrefix(line, "\ufeff")
	if !strings.HasPrefix(line, metaMarker) {
		return Meta{}, nil, fmt.Errorf("%w: meta information not found in the first line", ErrFormat)
	}

	var diags []Diagnostic
	missing := func(key string) {
		diags = append(diags, Diagnostic{
			Kind:    DiagMissingKey,
			Line:    1,
			Message: fmt.Sprintf("failed to parse %s from: %s", key, line),
		})
	}
	lookupInt := func(key string) int {
		if match := metaKeyPatterns[key].FindStringSubmatch(line); match != nil {
			if value, err := strconv.Atoi(match[1]); err == nil {
				return value
			}
		}
		missing(key)
		return 0
	}
	lookupFloat := func(key string) float64 {
		if match := metaKeyPatterns[key].FindStringSubmatch(line); match != nil {
			if value, err := strconv.ParseFloat(match[1], 64); err == nil {
				return value
			}
		}
		missing(key)
		return 0
	}

	meta := Meta{
		BPM:         lookupInt("bpm"),
		BeatsPerBar: lookupFloat("beat"),
		IntroBeats:  lookupInt("intro"),
	}

	if meta.BPM <= 0 {
		return Meta{}, diags, fmt.Errorf("%w: bpm must be positive", ErrFormat)
	}
	if meta.BeatsPerBar <= 0 {
		return Meta{}, diags, fmt.Errorf("%w: beat must be positive", ErrFormat)
	}

	return meta, diags, nil
}
