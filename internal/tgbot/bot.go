package tgbot

import (
	"context"
	"errors"
	"fmt"

	"github.com/goserg/ffserver/internal/config"
	"github.com/goserg/ffserver/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot *tgbotapi.BotAPI
	log *logrus.Entry

	commands *Commands
}

var ErrBadRequest = errors.New("unknown command, try /help")

func New(ps *service.PlayerService, cfg config.TgBot, l *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}
	bot.Debug = cfg.Debug

	return &Bot{
		bot:      bot,
		log:      l.WithField("from", "tg_bot"),
		commands: NewCommands(ps),
	}, nil
}

// Run blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	defer b.bot.StopReceivingUpdates()

	b.log.WithField("username", b.bot.Self.UserName).Info("bot started")
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	err := b.commands.RunCommand(ctx, update.Message.Command(), update.Message.CommandArguments(), &msg)
	if err != nil {
		msg.Text = err.Error()
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
		return
	}
}
