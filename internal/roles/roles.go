// Package roles loads the performer role file: one performer per line as
// `name,colorName,avatarName[,...]`.
package roles

import (
	"fmt"
	"strings"

	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/logger"
	"github.com/sukalov/lyricsdivision/internal/utils"
)

// Palette lists the color names a role file may assign
var Palette = []string{"RED", "BLUE", "GREEN", "YELLOW", "PURPLE", "ORANGE", "PINK", "CYAN", "WHITE", "BLACK"}

// avatar marks for colorblind players
var avatarLetters = map[string]string{
	"Spade":   "S",
	"Heart":   "H",
	"Diamond": "D",
	"Club":    "C",
}

// Roster is the loaded role file
type Roster struct {
	Performers []division.Performer
	// Avatars maps a color to the first avatar assigned to it
	Avatars map[string]string
}

// Load reads and parses a role file
func Load(path string) (*Roster, []division.Diagnostic, error) {
	lines, err := utils.ReadLines(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(lines)
}

// Parse builds a roster from role file lines. Blank lines are ignored.
func Parse(lines []string) (*Roster, []division.Diagnostic, error) {
	roster := &Roster{Avatars: make(map[string]string)}
	var diags []division.Diagnostic

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 3 {
			return nil, diags, fmt.Errorf("role file line %d: expected name,color,avatar, got %q", i+1, line)
		}

		colorName, err := NormalizeColor(fields[1])
		if err != nil {
			return nil, diags, fmt.Errorf("role file line %d: %w", i+1, err)
		}

		avatar, err := NormalizeAvatar(fields[2])
		if err != nil {
			return nil, diags, fmt.Errorf("role file line %d: %w", i+1, err)
		}

		roster.Performers = append(roster.Performers, division.Performer{
			Name:   strings.TrimSpace(fields[0]),
			Color:  colorName,
			Avatar: avatar,
		})

		if _, exists := roster.Avatars[colorName]; exists {
			d := division.Diagnostic{
				Kind:    division.DiagDuplicateColor,
				Line:    i + 1,
				Message: fmt.Sprintf("duplicate color entry found: %s, ignoring the second entry", colorName),
			}
			logger.Warn(d.String())
			diags = append(diags, d)
			continue
		}
		roster.Avatars[colorName] = avatar
	}

	logger.Debug(fmt.Sprintf("Loaded %d performers, %d avatar entries", len(roster.Performers), len(roster.Avatars)))

	return roster, diags, nil
}

// NormalizeColor returns the palette spelling of a color name
func NormalizeColor(name string) (string, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, c := range Palette {
		if c == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", name)
}

// NormalizeAvatar returns the canonical spelling of an avatar name
func NormalizeAvatar(name string) (string, error) {
	name = strings.TrimSpace(name)
	for avatar := range avatarLetters {
		if strings.EqualFold(avatar, name) {
			return avatar, nil
		}
	}
	return "", fmt.Errorf("unknown avatar %q", name)
}

// AvatarLetter returns the one-letter mark of an avatar, "?" if unknown
func AvatarLetter(avatar string) string {
	if letter, ok := avatarLetters[avatar]; ok {
		return letter
	}
	return "?"
}
