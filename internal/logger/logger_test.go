package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type channelClient struct {
	sent chan string
}

func (c *channelClient) SendMessage(chatID int64, text string) error {
	c.sent <- text
	return nil
}

func TestLocalSinkLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)

	Debug("hidden")
	Warn("duplicate color")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "duplicate color")
}

func TestInitMirrorsToChannel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)
	t.Setenv("LOG_CHANNEL_ID", "-100123")

	client := &channelClient{sent: make(chan string, 4)}
	require.NoError(t, Init(client))
	assert.Equal(t, int64(-100123), ChannelID)
	defer func() {
		mu.Lock()
		botClient = nil
		mu.Unlock()
	}()

	Error("build failed")

	select {
	case msg := <-client.sent:
		assert.Contains(t, msg, "ERROR")
		assert.Contains(t, msg, "build failed")
	case <-time.After(2 * time.Second):
		t.Fatal("log was not mirrored to the channel")
	}
}

func TestLogWithErr(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)

	assert.NoError(t, LogWithErr("saved", nil))
	assert.Contains(t, buf.String(), "saved")

	cause := errors.New("disk full")
	err := LogWithErr("export", cause)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "export: disk full")
}
