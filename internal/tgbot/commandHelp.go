package tgbot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, args string, resp *tgbotapi.MessageConfig) error {
	args = strings.TrimPrefix(strings.TrimSpace(args), "/")
	if command, ok := c.commands[args]; ok {
		resp.Text = command.Help()
		return nil
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range sortedNames(c.commands) {
		b.WriteString("/")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Use /help and a command name for details")
	resp.Text = b.String()
	return nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}
