// Package export writes schedules in the formats the game and the people timing songs read.
package export

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/roles"
	"github.com/sukalov/lyricsdivision/internal/utils"
)

type xmlSchedule struct {
	XMLName xml.Name  `xml:"ArrayOfLine"`
	Lines   []xmlLine `xml:"Line"`
}

type xmlLine struct {
	Timing string    `xml:"timing"`
	Text   string    `xml:"text"`
	Parts  []xmlPart `xml:"partList>Part,omitempty"`
}

type xmlPart struct {
	Timing string             `xml:"timing"`
	Word   string             `xml:"word"`
	Player division.Performer `xml:"player"`
}

// WriteXML writes the schedule as an XML snapshot
func WriteXML(w io.Writer, schedule *division.Schedule) error {
	doc := xmlSchedule{Lines: make([]xmlLine, 0, len(schedule.Lines))}
	for _, line := range schedule.Lines {
		xl := xmlLine{Timing: formatFloat(line.Timestamp), Text: line.Text}
		for _, part := range line.Parts {
			xl.Parts = append(xl.Parts, xmlPart{
				Timing: formatFloat(part.Timestamp),
				Word:   part.Word,
				Player: part.Performer,
			})
		}
		doc.Lines = append(doc.Lines, xl)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// ReadXML reads a snapshot written by WriteXML back into lines
func ReadXML(r io.Reader) ([]division.Line, error) {
	var doc xmlSchedule
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode schedule: %w", err)
	}

	lines := make([]division.Line, 0, len(doc.Lines))
	for _, xl := range doc.Lines {
		timing, err := strconv.ParseFloat(xl.Timing, 64)
		if err != nil {
			return nil, fmt.Errorf("bad line timing %q: %w", xl.Timing, err)
		}
		line := division.Line{Timestamp: timing, Text: xl.Text}
		for _, xp := range xl.Parts {
			t, err := strconv.ParseFloat(xp.Timing, 64)
			if err != nil {
				return nil, fmt.Errorf("bad part timing %q: %w", xp.Timing, err)
			}
			line.Parts = append(line.Parts, division.Part{Timestamp: t, Word: xp.Word, Performer: xp.Player})
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// WriteColorLog writes each lyric line with its words, avatars and colors for a human check
func WriteColorLog(w io.Writer, schedule *division.Schedule) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Lyrics Color Log:")
	for _, line := range schedule.LyricLines() {
		fmt.Fprintf(bw, "[%s]\n", utils.FormatSeconds(line.Timestamp))
		for _, part := range line.Parts {
			fmt.Fprintf(bw, "  \"%s: %s\" - %s %s\n",
				formatFloat(part.Timestamp), part.Word, roles.AvatarLetter(part.Performer.Avatar), part.Performer.Color)
		}
	}
	return bw.Flush()
}

// WritePartDivision writes one `SS.ss, COLOR` row per part
func WritePartDivision(w io.Writer, schedule *division.Schedule) error {
	bw := bufio.NewWriter(w)
	for _, line := range schedule.LyricLines() {
		for _, part := range line.Parts {
			fmt.Fprintf(bw, "%s, %s\n", utils.FormatSeconds(part.Timestamp), part.Performer.Color)
		}
	}
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
