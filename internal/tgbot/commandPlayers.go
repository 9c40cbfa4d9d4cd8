package tgbot

import (
	"context"
	"strconv"
	"strings"

	"github.com/goserg/ffserver/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const topSize = 10

type PlayersCommand struct {
	playerService *service.PlayerService
}

func (c *PlayersCommand) Run(ctx context.Context, _ string, resp *tgbotapi.MessageConfig) error {
	players, err := c.playerService.TopPlayers(ctx, topSize)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		resp.Text = "No players yet"
		return nil
	}
	var buffer strings.Builder
	for i := range players {
		buffer.WriteString(strconv.Itoa(i + 1))
		buffer.WriteString(". ")
		buffer.WriteString(players[i].Name)
		buffer.WriteString(" (")
		buffer.WriteString(formatPoints(players[i].FantasyPoints))
		buffer.WriteString(")\n")
	}
	resp.Text = buffer.String()
	return nil
}

func (c *PlayersCommand) Help() string {
	return "Top players by fantasy points"
}

func formatPoints(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', 1, 64)
}
