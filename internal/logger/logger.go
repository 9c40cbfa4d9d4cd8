package logger

import (
	"os"
	"time"

	"github.com/goserg/ffserver/internal/config"
	"github.com/sirupsen/logrus"
)

// New builds the process logger. A configured log file is appended to,
// or truncated when cfg.Truncate is set.
func New(cfg config.Log) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.DateTime,
		FullTimestamp:   true,
	})
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	if cfg.File != "" {
		flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
		if cfg.Truncate {
			flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		}
		f, err := os.OpenFile(cfg.File, flags, 0o644)
		if err != nil {
			return nil, err
		}
		l.SetOutput(f)
	}
	return l, nil
}
