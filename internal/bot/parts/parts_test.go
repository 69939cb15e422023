package parts

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"github.com/sukalov/lyricsdivision/internal/division"
)

var schedule = &division.Schedule{
	Lines: []division.Line{
		{Timestamp: 0},
		{Timestamp: 3, Text: "Hey you", Parts: []division.Part{
			{Timestamp: 3, Word: "Hey", Performer: division.Performer{Name: "aki", Color: "RED", Avatar: "Spade"}},
			{Timestamp: 3.5, Word: "you", Performer: division.Performer{Name: "ben", Color: "BLUE", Avatar: "Heart"}},
		}},
		{Timestamp: 6, Text: division.EndMarker},
		{Timestamp: 8},
	},
}

func TestFormatParts(t *testing.T) {
	assert.Equal(t, "*03.00*\n`03.00` S Hey (aki)\n`03.50` H you (ben)\n\n", FormatParts(schedule))
}

func TestFormatPartsEmptySong(t *testing.T) {
	empty := &division.Schedule{Lines: []division.Line{{}, {Text: division.EndMarker}, {Timestamp: 2}}}
	assert.Equal(t, "no lyrics in this song", FormatParts(empty))
}

func TestFormatLines(t *testing.T) {
	assert.Equal(t, "`00.00` …\n`03.00` Hey you\n`06.00` GAME END.\n`08.00` …\n", FormatLines(schedule))
}

func TestCommandHandlers(t *testing.T) {
	h := NewHandlers(nil, []string{"sukalov"})
	handlers := h.CommandHandlers()

	for _, cmd := range []string{"start", "help", "parts", "lines", "rebuild"} {
		assert.Contains(t, handlers, cmd)
	}
	assert.True(t, h.admins["sukalov"])
}

func TestIsAdmin(t *testing.T) {
	h := NewHandlers(nil, []string{"sukalov"})

	assert.True(t, h.isAdmin(&tgbotapi.Message{From: &tgbotapi.User{UserName: "sukalov"}}))
	assert.False(t, h.isAdmin(&tgbotapi.Message{From: &tgbotapi.User{UserName: "guest"}}))
	assert.False(t, h.isAdmin(&tgbotapi.Message{From: nil}))
}
