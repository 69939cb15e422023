package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sukalov/lyricsdivision/internal/bot"
	"github.com/sukalov/lyricsdivision/internal/bot/parts"
	"github.com/sukalov/lyricsdivision/internal/config"
	"github.com/sukalov/lyricsdivision/internal/logger"
)

func botCmd() *cobra.Command {
	var admins []string

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Runs the Telegram bot that answers part questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.BotToken == "" {
				return fmt.Errorf("BOT_TOKEN is required")
			}

			runner, cleanup, err := newRunner(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer cleanup()

			partsBot, err := bot.New("parts", cfg.BotToken)
			if err != nil {
				return fmt.Errorf("failed to start bot: %w", err)
			}

			if err := logger.Init(partsBot); err != nil {
				logger.Warn(fmt.Sprintf("log channel disabled: %v", err))
			}

			handlers := parts.NewHandlers(runner, admins)
			go partsBot.Start(handlers.CommandHandlers(), nil)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			partsBot.Stop()
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&admins, "admin", nil, "usernames allowed to /rebuild")
	return cmd
}
