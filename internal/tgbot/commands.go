package tgbot

import (
	"context"
	"sort"

	"github.com/goserg/ffserver/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	Run(ctx context.Context, args string, resp *tgbotapi.MessageConfig) error
	Help() string
}

type Commands struct {
	list map[string]Command
}

func NewCommands(ps *service.PlayerService) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"players": &PlayersCommand{
				playerService: ps,
			},
			"player": &PlayerCommand{
				playerService: ps,
			},
			"projection": &ProjectionCommand{
				playerService: ps,
			},
			"teams": &TeamsCommand{
				playerService: ps,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, cmd string, args string, resp *tgbotapi.MessageConfig) error {
	command, ok := uc.list[cmd]
	if !ok {
		return ErrBadRequest
	}
	return command.Run(ctx, args, resp)
}

func sortedNames(list map[string]Command) []string {
	names := make([]string, 0, len(list))
	for name := range list {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
