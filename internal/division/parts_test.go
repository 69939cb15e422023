package division

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignPartsTimestampsAndWords(t *testing.T) {
	meta := Meta{BPM: 60, BeatsPerBar: 4}
	parsed := ParsedLine{BarCount: 2, Ratios: []int{0, 1, 3, 4}, Text: "Happy birthday to you"}
	performers := testPerformers(2)
	rotation := []int{0, 1, 1, 0}

	parts, err := AssignParts(meta, parsed, 10, performers, rotation)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Len(parts, 4)
	assert.Equal([]float64{10, 10.125, 10.375, 10.5},
		[]float64{parts[0].Timestamp, parts[1].Timestamp, parts[2].Timestamp, parts[3].Timestamp})
	assert.Equal("Happy", parts[0].Word)
	assert.Equal("you", parts[3].Word)
	assert.Equal(performers[0], parts[0].Performer)
	assert.Equal(performers[1], parts[1].Performer)
	assert.Equal(performers[1], parts[2].Performer)
	assert.Equal(performers[0], parts[3].Performer)
}

func TestAssignPartsWrapsRotation(t *testing.T) {
	meta := Meta{BPM: 60, BeatsPerBar: 4}
	parsed := ParsedLine{BarCount: 1, Ratios: []int{0, 1, 2}, Text: "a b c"}
	performers := testPerformers(3)

	parts, err := AssignParts(meta, parsed, 0, performers, []int{2, 1})
	require.NoError(t, err)

	assert.Equal(t, performers[2], parts[0].Performer)
	assert.Equal(t, performers[1], parts[1].Performer)
	assert.Equal(t, performers[2], parts[2].Performer)
}

func TestAssignPartsLongLineUsesFullRotation(t *testing.T) {
	meta := Meta{BPM: 60, BeatsPerBar: 4}
	ratios := make([]int, RotationLength+1)
	words := make([]string, RotationLength+1)
	for i := range ratios {
		ratios[i] = i
		words[i] = "la"
	}
	parsed := ParsedLine{BarCount: 8, Ratios: ratios}
	for i, w := range words {
		if i > 0 {
			parsed.Text += " "
		}
		parsed.Text += w
	}
	rotation := make([]int, RotationLength)
	rotation[RotationLength-1] = 1

	parts, err := AssignParts(meta, parsed, 0, testPerformers(2), rotation)
	require.NoError(t, err)

	assert.Len(t, parts, RotationLength+1)
	assert.Equal(t, "ben", parts[RotationLength-1].Performer.Name)
	assert.Equal(t, "aki", parts[RotationLength].Performer.Name)
}

func TestAssignPartsRejectsEmptyRotation(t *testing.T) {
	meta := Meta{BPM: 60, BeatsPerBar: 4}
	parsed := ParsedLine{BarCount: 1, Ratios: []int{0, 1}, Text: "a b"}

	_, err := AssignParts(meta, parsed, 0, testPerformers(2), nil)
	assert.ErrorIs(t, err, ErrDegenerateRotation)
}

func TestAssignPartsRejectsRotationOutsidePerformers(t *testing.T) {
	meta := Meta{BPM: 60, BeatsPerBar: 4}
	parsed := ParsedLine{BarCount: 1, Ratios: []int{0}, Text: "a"}

	_, err := AssignParts(meta, parsed, 0, testPerformers(2), []int{2})
	assert.ErrorIs(t, err, ErrDegenerateRotation)
}

func TestAssignPartsRejectsMissingWords(t *testing.T) {
	meta := Meta{BPM: 60, BeatsPerBar: 4}
	parsed := ParsedLine{BarCount: 1, Ratios: []int{0, 1, 2}, Text: "a b"}

	_, err := AssignParts(meta, parsed, 0, testPerformers(2), []int{0, 1})
	assert.ErrorIs(t, err, ErrMalformedLine)
}
