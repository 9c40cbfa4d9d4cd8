package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/goserg/ffserver/internal/service"
	"github.com/goserg/ffserver/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ProjectionCommand struct {
	playerService *service.PlayerService
}

func (c *ProjectionCommand) Run(ctx context.Context, args string, resp *tgbotapi.MessageConfig) error {
	query := strings.TrimSpace(args)
	if query == "" {
		return errors.New(`put the player id or name after /projection, e.g. "/projection Derrick Henry"`)
	}
	player, err := findPlayer(ctx, c.playerService, query)
	if errors.Is(err, storage.ErrNotFound) {
		return errors.New("player not found")
	}
	if err != nil {
		return err
	}
	p, err := c.playerService.ProjectNextGame(ctx, player.ID)
	if err != nil {
		return err
	}

	var buf strings.Builder
	buf.WriteString("Next game for ")
	buf.WriteString(player.Name)
	buf.WriteString(" (from ")
	buf.WriteString(strconv.Itoa(p.Games))
	buf.WriteString(" games)\n")
	for _, line := range []struct {
		name  string
		value float64
	}{
		{"Rush attempts", p.RushAttempts},
		{"Rush yards", p.RushYards},
		{"Rush TDs", p.RushTDs},
		{"Receptions", p.Receptions},
		{"Rec yards", p.RecYards},
		{"Rec TDs", p.RecTDs},
	} {
		buf.WriteString(line.name)
		buf.WriteString(": ")
		buf.WriteString(strconv.FormatFloat(line.value, 'f', 2, 64))
		buf.WriteString("\n")
	}
	resp.Text = buf.String()
	return nil
}

func (c *ProjectionCommand) Help() string {
	return "Next game projection from the player's game log. Usage: /projection and the player's id or name"
}
