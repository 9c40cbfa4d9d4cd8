package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/goserg/ffserver/internal/config"
	"github.com/goserg/ffserver/internal/domain"
	"github.com/goserg/ffserver/internal/importer"
	"github.com/goserg/ffserver/internal/logger"
	"github.com/goserg/ffserver/internal/service"
	"github.com/goserg/ffserver/internal/storage/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		serverConfigPath string
		playerID         int
		name             string
		team             string
		position         string
		csvPath          string
	)
	flag.StringVar(&serverConfigPath, "server-config", config.DefaultServerConfig, "path to server config")
	flag.IntVar(&playerID, "player-id", 0, "player id")
	flag.StringVar(&name, "name", "", "player name, used when the player is new")
	flag.StringVar(&team, "team", "", "team abbreviation, e.g. NYJ")
	flag.StringVar(&position, "position", "", "player position: QB, RB, WR, TE, K or DEF")
	flag.StringVar(&csvPath, "csv", "", "weekly stats CSV")
	flag.Parse()

	if playerID == 0 || csvPath == "" {
		return errors.New("-player-id and -csv are required")
	}

	cfg, err := config.NewServer(serverConfigPath)
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	st, err := sqlite.New(l, cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	ps := service.New(st, st, st, l)

	ctx := context.Background()
	player, created, err := ps.AddPlayerIfNotExists(ctx, domain.Player{
		ID:       playerID,
		Name:     name,
		Position: domain.Position(position),
	}, team)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("Added new player: %s (ID: %d)\n", player.Name, player.ID)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()
	parsed, err := importer.ReadWeekly(f)
	if err != nil {
		return err
	}
	for _, rowErr := range parsed.Errors {
		l.WithError(rowErr).Warn("skipped row")
	}

	res, err := ps.ImportGames(ctx, player.ID, parsed.Games)
	if err != nil {
		return err
	}
	fmt.Printf("%s: imported %d weeks, skipped %d, failed %d\n",
		player.Name, res.Imported, res.Skipped+len(parsed.Errors), len(res.Errors))
	return errors.Join(res.Errors...)
}
