package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goserg/ffserver/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"warn", "warn", logrus.WarnLevel},
		{"empty falls back", "", logrus.InfoLevel},
		{"garbage falls back", "loud", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(config.Log{Level: tt.level})
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNew_LogFile(t *testing.T) {
	tests := []struct {
		name     string
		truncate bool
		wantOld  bool
	}{
		{"appends by default", false, true},
		{"truncates in development", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "app.log")
			require.NoError(t, os.WriteFile(path, []byte("old run\n"), 0o644))

			l, err := New(config.Log{Level: "info", File: path, Truncate: tt.truncate})
			require.NoError(t, err)
			l.Info("fresh")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOld, strings.Contains(string(data), "old run"))
			assert.Contains(t, string(data), "fresh")
		})
	}
}
