package division

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetaReadsAllKeys(t *testing.T) {
	meta, diags, err := ParseMeta("# bpm[60],beat[4],intro[8]")
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert := assert.New(t)
	assert.Equal(60, meta.BPM)
	assert.Equal(4.0, meta.BeatsPerBar)
	assert.Equal(8, meta.IntroBeats)
	assert.Equal(1.0, meta.SecondsPerBeat())
	assert.Equal(8.0, meta.IntroSeconds())
	assert.Equal(8.0, meta.BarSeconds(2))
}

func TestParseMetaIgnoresKeyOrder(t *testing.T) {
	meta, _, err := ParseMeta("#title intro[2] beat[3] bpm[120]")
	require.NoError(t, err)
	assert.Equal(t, Meta{BPM: 120, BeatsPerBar: 3, IntroBeats: 2}, meta)
	assert.Equal(t, 0.5, meta.SecondsPerBeat())
	assert.Equal(t, 1.0, meta.IntroSeconds())
}

func TestParseMetaAcceptsFractionalBeat(t *testing.T) {
	meta, _, err := ParseMeta("#bpm[90]beat[2.5]intro[0]")
	require.NoError(t, err)
	assert.Equal(t, 2.5, meta.BeatsPerBar)
}

func TestParseMetaStripsByteOrderMark(t *testing.T) {
	_, _, err := ParseMeta("\ufeff#bpm[60]beat[4]intro[0]")
	assert.NoError(t, err)
}

func TestParseMetaMissingIntroDefaultsToZero(t *testing.T) {
	meta, diags, err := ParseMeta("#bpm[60]beat[4]")
	require.NoError(t, err)
	assert.Equal(t, 0, meta.IntroBeats)
	require.Len(t, diags, 1)
	assert.Equal(t, DiagMissingKey, diags[0].Kind)
	assert.Contains(t, diags[0].Message, "intro")
}

func TestParseMetaRejectsMissingMarker(t *testing.T) {
	_, _, err := ParseMeta("bpm[60]beat[4]intro[0]")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseMetaRejectsZeroBPM(t *testing.T) {
	_, diags, err := ParseMeta("#bpm[0]beat[4]intro[0]")
	assert.ErrorIs(t, err, ErrFormat)
	assert.Empty(t, diags)

	_, diags, err = ParseMeta("#beat[4]intro[0]")
	assert.ErrorIs(t, err, ErrFormat)
	assert.Len(t, diags, 1)
}

func TestParseMetaRejectsZeroBeat(t *testing.T) {
	_, _, err := ParseMeta("#bpm[60]beat[0]intro[0]")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseMetaOverflowingIntroDefaultsToZero(t *testing.T) {
	meta, diags, err := ParseMeta("#bpm[60]beat[4]intro[99999999999999999999]")
	require.NoError(t, err)
	assert.Equal(t, 0, meta.IntroBeats)
	assert.Equal(t, 0.0, meta.IntroSeconds())
	require.Len(t, diags, 1)
	assert.Equal(t, DiagMissingKey, diags[0].Kind)
	assert.Contains(t, diags[0].Message, "intro")
}

func TestParseMetaOverflowingBPMIsFatal(t *testing.T) {
	_, diags, err := ParseMeta("#bpm[99999999999999999999]beat[4]intro[0]")
	assert.ErrorIs(t, err, ErrFormat)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "bpm")
}
