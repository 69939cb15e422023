package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sukalov/lyricsdivision/internal/utils"
	"github.com/sukalov/lyricsdivision/internal/utils/e"
)

var (
	ChannelID int64
	once      sync.Once
	mu        sync.RWMutex
	botClient BotClient
	local     = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
)

// BotClient mirrors log lines to a Telegram channel
type BotClient interface {
	SendMessage(chatID int64, text string) error
}

// Init attaches a channel client. LOG_CHANNEL_ID must be set.
func Init(client BotClient) error {
	var initErr error
	once.Do(func() {
		env, err := utils.LoadEnv([]string{"LOG_CHANNEL_ID"})
		if err != nil {
			initErr = fmt.Errorf("failed to load LOG_CHANNEL_ID: %w", err)
			return
		}

		ChannelID, err = strconv.ParseInt(env["LOG_CHANNEL_ID"], 10, 64)
		if err != nil {
			initErr = fmt.Errorf("failed to parse LOG_CHANNEL_ID: %w", err)
			return
		}

		mu.Lock()
		botClient = client
		mu.Unlock()
	})

	return initErr
}

// SetOutput redirects the local log sink
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	local = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func Info(message string) {
	logEvent(zerolog.InfoLevel, "ℹ️ INFO", message)
}

func Warn(message string) {
	logEvent(zerolog.WarnLevel, "⚠️ WARN", message)
}

func Error(message string) {
	logEvent(zerolog.ErrorLevel, "❌ ERROR", message)
}

func Debug(message string) {
	logEvent(zerolog.DebugLevel, "🔍 DEBUG", message)
}

func Success(message string) {
	logEvent(zerolog.InfoLevel, "✅ SUCCESS", message)
}

func logEvent(level zerolog.Level, prefix, message string) {
	mu.RLock()
	l := local
	client := botClient
	mu.RUnlock()

	l.WithLevel(level).Msg(message)

	if client == nil || level == zerolog.DebugLevel {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logMessage := fmt.Sprintf("[%s] %s\n%s", timestamp, prefix, message)

	go func() {
		if err := client.SendMessage(ChannelID, logMessage); err != nil {
			l.Warn().Err(err).Msg("failed to send log to channel")
		}
	}()
}

// LogWithErr logs message as info when err is nil, otherwise as an error,
// and returns err wrapped with message.
func LogWithErr(message string, err error) error {
	if err == nil {
		Info(message)
		return nil
	}

	Error(fmt.Sprintf("%s\nError: %v", message, err))

	return e.Wrap(message, err)
}
