package roles

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/logger"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard, zerolog.Disabled)
	os.Exit(m.Run())
}

func TestParseRoleFile(t *testing.T) {
	roster, diags, err := Parse([]string{
		"aki, RED, Spade, mic1",
		"ben,blue,heart",
		"",
		"chi, Green , DIAMOND",
	})
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, []division.Performer{
		{Name: "aki", Color: "RED", Avatar: "Spade"},
		{Name: "ben", Color: "BLUE", Avatar: "Heart"},
		{Name: "chi", Color: "GREEN", Avatar: "Diamond"},
	}, roster.Performers)
	assert.Equal(t, map[string]string{"RED": "Spade", "BLUE": "Heart", "GREEN": "Diamond"}, roster.Avatars)
}

func TestParseDuplicateColorFirstWins(t *testing.T) {
	roster, diags, err := Parse([]string{
		"aki,RED,Spade",
		"ben,RED,Heart",
	})
	require.NoError(t, err)

	assert.Len(t, roster.Performers, 2)
	assert.Equal(t, "Spade", roster.Avatars["RED"])
	require.Len(t, diags, 1)
	assert.Equal(t, division.DiagDuplicateColor, diags[0].Kind)
	assert.Equal(t, 2, diags[0].Line)
}

func TestParseRejectsBadRows(t *testing.T) {
	_, _, err := Parse([]string{"aki,RED"})
	assert.ErrorContains(t, err, "line 1")

	_, _, err = Parse([]string{"aki,RED,Spade", "ben,MAUVE,Heart"})
	assert.ErrorContains(t, err, "line 2")

	_, _, err = Parse([]string{"aki,RED,Star"})
	assert.ErrorContains(t, err, "unknown avatar")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PlayerRole.txt")
	require.NoError(t, os.WriteFile(path, []byte("aki,RED,Spade\nben,BLUE,Club\n"), 0644))

	roster, _, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, roster.Performers, 2)
}

func TestAvatarLetter(t *testing.T) {
	assert.Equal(t, "S", AvatarLetter("Spade"))
	assert.Equal(t, "C", AvatarLetter("Club"))
	assert.Equal(t, "?", AvatarLetter("Star"))
}
