// Package parts answers questions about who sings what in a song.
package parts

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sukalov/lyricsdivision/internal/bot"
	"github.com/sukalov/lyricsdivision/internal/division"
	"github.com/sukalov/lyricsdivision/internal/logger"
	"github.com/sukalov/lyricsdivision/internal/pipeline"
	"github.com/sukalov/lyricsdivision/internal/roles"
	"github.com/sukalov/lyricsdivision/internal/utils"
)

const usage = "send /parts <song> to see who sings each word, /lines <song> for the line timings"

type Handlers struct {
	runner *pipeline.Runner
	admins map[string]bool
}

func NewHandlers(runner *pipeline.Runner, adminUsernames []string) *Handlers {
	admins := make(map[string]bool)
	for _, username := range adminUsernames {
		admins[username] = true
	}
	return &Handlers{runner: runner, admins: admins}
}

// CommandHandlers maps bot commands to handlers
func (h *Handlers) CommandHandlers() map[string]bot.Handler {
	return map[string]bot.Handler{
		"start":   h.helpHandler,
		"help":    h.helpHandler,
		"parts":   h.partsHandler,
		"lines":   h.linesHandler,
		"rebuild": h.rebuildHandler,
	}
}

func (h *Handlers) helpHandler(b *bot.Bot, update tgbotapi.Update) error {
	return b.SendMessage(update.Message.Chat.ID, usage)
}

func (h *Handlers) partsHandler(b *bot.Bot, update tgbotapi.Update) error {
	return h.reply(b, update, FormatParts)
}

func (h *Handlers) linesHandler(b *bot.Bot, update tgbotapi.Update) error {
	return h.reply(b, update, FormatLines)
}

func (h *Handlers) rebuildHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if !h.isAdmin(message) {
		return b.SendMessage(message.Chat.ID, "only admins can rebuild songs")
	}

	song := strings.TrimSpace(message.CommandArguments())
	if song == "" {
		return b.SendMessage(message.Chat.ID, usage)
	}

	res, err := h.runner.Build(context.Background(), song)
	if err != nil {
		return b.SendMessage(message.Chat.ID, fmt.Sprintf("could not rebuild %s: %v", song, err))
	}

	logger.Success(fmt.Sprintf("%s rebuilt %s", message.From.UserName, song))
	return b.SendMessage(message.Chat.ID, fmt.Sprintf("rebuilt %s: %d lines, %d parts", song, len(res.Schedule.Lines), res.Schedule.PartCount()))
}

// messages sent on behalf of a chat carry no sender
func (h *Handlers) isAdmin(message *tgbotapi.Message) bool {
	return message.From != nil && h.admins[message.From.UserName]
}

func (h *Handlers) reply(b *bot.Bot, update tgbotapi.Update, format func(*division.Schedule) string) error {
	message := update.Message
	song := strings.TrimSpace(message.CommandArguments())
	if song == "" {
		return b.SendMessage(message.Chat.ID, usage)
	}

	schedule, err := h.runner.Schedule(context.Background(), song)
	if err != nil {
		return b.SendMessage(message.Chat.ID, fmt.Sprintf("could not load %s", song))
	}

	return b.SendMessageWithMarkdown(message.Chat.ID, format(schedule))
}

// FormatParts renders every lyric line with the performer of each word
func FormatParts(schedule *division.Schedule) string {
	var sb strings.Builder
	for _, line := range schedule.LyricLines() {
		fmt.Fprintf(&sb, "*%s*\n", utils.FormatSeconds(line.Timestamp))
		for _, part := range line.Parts {
			fmt.Fprintf(&sb, "`%s` %s %s (%s)\n",
				utils.FormatSeconds(part.Timestamp), roles.AvatarLetter(part.Performer.Avatar), part.Word, part.Performer.Name)
		}
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return "no lyrics in this song"
	}
	return sb.String()
}

// FormatLines renders `timing text` per schedule line
func FormatLines(schedule *division.Schedule) string {
	var sb strings.Builder
	for _, line := range schedule.Lines {
		text := line.Text
		if text == "" {
			text = "…"
		}
		fmt.Fprintf(&sb, "`%s` %s\n", utils.FormatSeconds(line.Timestamp), text)
	}
	return sb.String()
}
