package bot

import (
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Handler processes one update
type Handler func(b *Bot, update tgbotapi.Update) error

// Bot represents a configurable Telegram bot
type Bot struct {
	Client     *tgbotapi.BotAPI
	updateChan tgbotapi.UpdatesChannel
	stopChan   chan struct{}
	name       string
	stopOnce   sync.Once
}

// New creates a new bot instance
func New(name, token string) (*Bot, error) {
	botClient, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updateChan := botClient.GetUpdatesChan(updateConfig)

	return &Bot{
		Client:     botClient,
		updateChan: updateChan,
		stopChan:   make(chan struct{}),
		name:       name,
	}, nil
}

// Start processes updates until Stop is called
func (b *Bot) Start(commandHandlers map[string]Handler, messageHandlers []Handler) {
	log.Printf("[%s] authorized on account %s", b.name, b.Client.Self.UserName)

	for {
		select {
		case update, ok := <-b.updateChan:
			if !ok {
				return
			}
			go b.processUpdate(update, commandHandlers, messageHandlers)
		case <-b.stopChan:
			return
		}
	}
}

func (b *Bot) processUpdate(update tgbotapi.Update, commandHandlers map[string]Handler, messageHandlers []Handler) {
	if update.Message != nil && update.Message.IsCommand() {
		if handler, exists := commandHandlers[update.Message.Command()]; exists {
			if err := handler(b, update); err != nil {
				log.Printf("[%s] command handler error: %v", b.name, err)
			}
			return
		}
	}

	for _, handler := range messageHandlers {
		if err := handler(b, update); err != nil {
			log.Printf("[%s] message handler error: %v", b.name, err)
		}
	}
}

// Stop halts the bot. Calling it more than once is a no-op.
func (b *Bot) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopChan)
		b.Client.StopReceivingUpdates()
	})
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.Client.Send(msg)
	return err
}

func (b *Bot) SendMessageWithMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	_, err := b.Client.Send(msg)
	return err
}
