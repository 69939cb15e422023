package lyrics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sukalov/lyricsdivision/internal/division"
)

// Draft turns plain lyric lines into a lyrics file skeleton: a meta line and one
// `bars[ratios]text` line per non-empty input line, with word offsets spread evenly
// over the line. The result parses as-is and is meant to be retimed by hand.
func Draft(title string, meta division.Meta, barsPerLine int, plain []string) []string {
	out := []string{fmt.Sprintf("#%s bpm[%d] beat[%s] intro[%d]",
		title, meta.BPM, strconv.FormatFloat(meta.BeatsPerBar, 'f', -1, 64), meta.IntroBeats)}

	totalBeats := int(meta.BeatsPerBar * float64(barsPerLine))
	for _, line := range plain {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		ratios := make([]string, len(words))
		for i := range words {
			ratio := i
			if len(words) <= totalBeats {
				ratio = i * totalBeats / len(words)
			}
			ratios[i] = strconv.Itoa(ratio)
		}

		out = append(out, fmt.Sprintf("%d[%s]%s", barsPerLine, strings.Join(ratios, ","), strings.Join(words, " ")))
	}

	return out
}
