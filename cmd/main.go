package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/ffserver/internal/config"
	"github.com/goserg/ffserver/internal/logger"
	"github.com/goserg/ffserver/internal/service"
	"github.com/goserg/ffserver/internal/storage/sqlite"
	"github.com/goserg/ffserver/internal/tgbot"
	"github.com/goserg/ffserver/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath, botConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", config.DefaultServerConfig, "path to server config")
	flag.StringVar(&botConfigPath, "bot-config", config.DefaultBotConfig, "path to bot config")
	flag.Parse()

	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	l, err := logger.New(cfg.Server.Log)
	if err != nil {
		return err
	}

	st, err := sqlite.New(l, cfg.Server)
	if err != nil {
		return err
	}
	defer st.Close()

	playerService := service.New(st, st, st, l)
	server, err := web.New(playerService, cfg.Server, l)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(playerService, cfg.TgBot, l)
		if err != nil {
			return err
		}
		go bot.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		l.Info("shutting down")
		return server.Shutdown()
	}
}
