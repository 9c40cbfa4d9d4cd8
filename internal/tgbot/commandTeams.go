package tgbot

import (
	"context"
	"strings"

	"github.com/goserg/ffserver/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TeamsCommand struct {
	playerService *service.PlayerService
}

func (c *TeamsCommand) Run(ctx context.Context, _ string, resp *tgbotapi.MessageConfig) error {
	teams, err := c.playerService.ListTeams(ctx)
	if err != nil {
		return err
	}
	var buffer strings.Builder
	for _, team := range teams {
		buffer.WriteString(team.Name)
		buffer.WriteString(" - ")
		buffer.WriteString(team.Division)
		buffer.WriteString("\n")
	}
	resp.Text = buffer.String()
	return nil
}

func (c *TeamsCommand) Help() string {
	return "All teams with their divisions"
}
