package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/goserg/ffserver/internal/domain"
	"github.com/goserg/ffserver/internal/service"
	"github.com/goserg/ffserver/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type PlayerCommand struct {
	playerService *service.PlayerService
}

func (c *PlayerCommand) Run(ctx context.Context, args string, resp *tgbotapi.MessageConfig) error {
	query := strings.TrimSpace(args)
	if query == "" {
		return errors.New(`put the player id or name after /player, e.g. "/player Derrick Henry"`)
	}
	player, err := findPlayer(ctx, c.playerService, query)
	if errors.Is(err, storage.ErrNotFound) {
		return errors.New("player not found")
	}
	if err != nil {
		return err
	}
	resp.Text = printPlayer(player)
	return nil
}

// findPlayer looks the query up as an id first, then as a name.
func findPlayer(ctx context.Context, ps *service.PlayerService, query string) (domain.Player, error) {
	if id, err := strconv.Atoi(query); err == nil {
		return ps.GetPlayer(ctx, id)
	}
	return ps.GetPlayerByName(ctx, query)
}

func (c *PlayerCommand) Help() string {
	return "Player card. Usage: /player and the player's id or name"
}

func printPlayer(player domain.Player) string {
	var buf strings.Builder
	buf.WriteString("ID: ")
	buf.WriteString(strconv.Itoa(player.ID))
	buf.WriteString("\n")
	buf.WriteString("Name: ")
	buf.WriteString(player.Name)
	buf.WriteString("\n")
	buf.WriteString("Position: ")
	buf.WriteString(string(player.Position))
	buf.WriteString("\n")
	buf.WriteString("Team: ")
	buf.WriteString(player.Team.Name)
	buf.WriteString("\n")
	buf.WriteString("Fantasy points: ")
	buf.WriteString(formatPoints(player.FantasyPoints))
	return buf.String()
}
