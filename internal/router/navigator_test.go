package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadOnHome(t *testing.T) {
	tests := []struct {
		name string
		to   string
		from string
		want Decision
	}{
		{"player to home", "/", "/player/42", Reload},
		{"external to home", "/", "", Reload},
		{"home to home", "/", "/", Proceed},
		{"home to player", "/player/42", "/", Proceed},
		{"player to player", "/player/7", "/player/42", Proceed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReloadOnHome(tt.to, tt.from))
		})
	}
}

func TestNavigator_Navigate(t *testing.T) {
	table := testTable(t)
	guarded := NewNavigator(table, ReloadOnHome)
	unguarded := NewNavigator(table)

	tests := []struct {
		name         string
		nav          *Navigator
		from         string
		to           string
		wantRoute    string
		wantDecision Decision
	}{
		{"guarded back home", guarded, "/player/42", "/", "Players", Reload},
		{"unguarded back home", unguarded, "/player/42", "/", "Players", Proceed},
		{"guarded home to home", guarded, "/", "/", "Players", Proceed},
		{"guarded to detail", guarded, "/", "/player/42", "PlayerDetail", Proceed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.nav.Navigate(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoute, tr.To.Route.Name)
			assert.Equal(t, tt.wantDecision, tr.Decision)
			assert.Equal(t, tt.from, tr.From)
		})
	}
}

func TestNavigator_UnknownSkipsGuards(t *testing.T) {
	called := false
	nav := NewNavigator(testTable(t), func(to, from string) Decision {
		called = true
		return Reload
	})
	_, err := nav.Navigate("/", "/nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, called)
}

func TestNavigator_FirstReloadWins(t *testing.T) {
	var calls int
	count := func(to, from string) Decision {
		calls++
		return Proceed
	}
	nav := NewNavigator(testTable(t), count, ReloadOnHome, count)
	tr, err := nav.Navigate("/player/1", "/")
	require.NoError(t, err)
	assert.Equal(t, Reload, tr.Decision)
	assert.Equal(t, 1, calls)
}
