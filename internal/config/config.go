package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	Debug            bool   `toml:"debug_mode"`
}

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	ReloadHome bool   `toml:"reload_home"`
	SqliteFile string `toml:"sqlite_file"`
	CertFile   string `toml:"cert_file"`
	KeyFile    string `toml:"key_file"`
	Log        Log    `toml:"log"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	// Truncate starts a fresh log file instead of appending. Set in development.
	Truncate bool `toml:"-"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

const (
	envDevelopment = "development"

	DefaultServerConfig = "configs/server.toml"
	DefaultBotConfig    = "configs/bot.toml"
)

func defaultServer() Server {
	return Server{
		Host:       "0.0.0.0",
		Port:       3000,
		ReloadHome: true,
		SqliteFile: "ffserver.sqlite",
		Log: Log{
			Level: "info",
		},
	}
}

// New reads both config files. A missing bot config leaves the bot
// disabled.
func New(serverPath, botPath string) (Config, error) {
	serverCfg, err := NewServer(serverPath)
	if err != nil {
		return Config{}, err
	}

	var tgBotCfg TgBot
	if botPath != "" {
		_, err = toml.DecodeFile(botPath, &tgBotCfg)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}

func NewServer(path string) (Server, error) {
	serverCfg := defaultServer()
	_, err := toml.DecodeFile(path, &serverCfg)
	if err != nil {
		return Server{}, err
	}
	if file := os.Getenv("SQLITE_FILE"); file != "" {
		serverCfg.SqliteFile = file
	}
	if os.Getenv("APP_ENV") == envDevelopment {
		serverCfg.Debug = true
		serverCfg.Log.Level = "debug"
		serverCfg.Log.Truncate = true
	}
	return serverCfg, nil
}

func (s Server) TLS() bool {
	return s.CertFile != "" && s.KeyFile != ""
}
