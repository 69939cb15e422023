package division

// EndMarker is the text of the synthetic line that closes every schedule
const EndMarker = "GAME END."

// TrailerGap is the number of seconds between the end marker and the blank trailing line
const TrailerGap = 2.0

// Performer identifies one participant of the song
type Performer struct {
	Name   string `json:"name" xml:"name"`
	Color  string `json:"color" xml:"color"`
	Avatar string `json:"avatar" xml:"avatar"`
}

// Meta holds the song-wide timing constants from the first lyrics line
type Meta struct {
	BPM         int     `json:"bpm"`
	BeatsPerBar float64 `json:"beats_per_bar"`
	IntroBeats  int     `json:"intro_beats"`
}

// SecondsPerBeat returns the length of one beat
func (m Meta) SecondsPerBeat() float64 {
	return 60 / float64(m.BPM)
}

// IntroSeconds returns the time at which the first lyric line starts
func (m Meta) IntroSeconds() float64 {
	return float64(m.IntroBeats) * m.SecondsPerBeat()
}

// BarSeconds returns how long barCount bars last
func (m Meta) BarSeconds(barCount int) float64 {
	return m.BeatsPerBar * float64(barCount) * m.SecondsPerBeat()
}

// Part is one word of a line together with the performer who sings it
type Part struct {
	Timestamp float64   `json:"timing"`
	Word      string    `json:"word"`
	Performer Performer `json:"player"`
}

// Line is one displayed lyric line
type Line struct {
	Timestamp float64 `json:"timing"`
	Text      string  `json:"text"`
	Parts     []Part  `json:"parts,omitempty"`
}

// IsSynthetic reports whether the line was generated by the builder rather than read from input
func (l Line) IsSynthetic() bool {
	return l.Text == "" || l.Text == EndMarker
}

// Schedule is the ordered output of a build
type Schedule struct {
	Meta        Meta         `json:"meta"`
	Lines       []Line       `json:"lines"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// LyricLines returns only the lines that came from the input file
func (s *Schedule) LyricLines() []Line {
	var lines []Line
	for _, line := range s.Lines {
		if !line.IsSynthetic() {
			lines = append(lines, line)
		}
	}
	return lines
}

// PartCount returns the total number of parts across all lines
func (s *Schedule) PartCount() int {
	count := 0
	for _, line := range s.Lines {
		count += len(line.Parts)
	}
	return count
}
