package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := New(
		Route{Path: "/", Name: "Players", View: "players"},
		Route{Path: "/player/:id", Name: "PlayerDetail", View: "playerDetail", Props: true},
	)
	require.NoError(t, err)
	return table
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		routes  []Route
		wantErr error
	}{
		{
			name:    "empty",
			routes:  nil,
			wantErr: ErrEmptyTable,
		},
		{
			name: "duplicate path",
			routes: []Route{
				{Path: "/", Name: "a"},
				{Path: "/", Name: "b"},
			},
			wantErr: ErrDuplicatePath,
		},
		{
			name: "duplicate pattern with other param name",
			routes: []Route{
				{Path: "/player/:id", Name: "a"},
				{Path: "/player/:name", Name: "b"},
			},
			wantErr: ErrDuplicatePath,
		},
		{
			name:    "relative path",
			routes:  []Route{{Path: "player", Name: "a"}},
			wantErr: ErrInvalidPath,
		},
		{
			name:    "empty segment",
			routes:  []Route{{Path: "/player//x", Name: "a"}},
			wantErr: ErrInvalidPath,
		},
		{
			name:    "unnamed param",
			routes:  []Route{{Path: "/player/:", Name: "a"}},
			wantErr: ErrInvalidPath,
		},
		{
			name: "ok",
			routes: []Route{
				{Path: "/", Name: "a"},
				{Path: "/player/:id", Name: "b"},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.routes...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTable_Resolve(t *testing.T) {
	table := testTable(t)
	tests := []struct {
		name      string
		path      string
		wantName  string
		wantProps map[string]string
		wantErr   bool
	}{
		{
			name:      "root",
			path:      "/",
			wantName:  "Players",
			wantProps: map[string]string{},
		},
		{
			name:      "player",
			path:      "/player/42",
			wantName:  "PlayerDetail",
			wantProps: map[string]string{"id": "42"},
		},
		{
			name:      "trailing slash",
			path:      "/player/42/",
			wantName:  "PlayerDetail",
			wantProps: map[string]string{"id": "42"},
		},
		{
			name:      "escaped param",
			path:      "/player/a%20b",
			wantName:  "PlayerDetail",
			wantProps: map[string]string{"id": "a b"},
		},
		{
			name:    "player without id",
			path:    "/player",
			wantErr: true,
		},
		{
			name:    "player with empty id",
			path:    "/player//",
			wantErr: true,
		},
		{
			name:    "too deep",
			path:    "/player/42/games",
			wantErr: true,
		},
		{
			name:    "unknown",
			path:    "/teams",
			wantErr: true,
		},
		{
			name:    "empty",
			path:    "",
			wantErr: true,
		},
		{
			name:    "relative path",
			path:    "player/42",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := table.Resolve(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, m.Route.Name)
			assert.Equal(t, tt.wantProps, m.Props())
		})
	}
}

func TestMatch_PropsNotForwarded(t *testing.T) {
	table, err := New(Route{Path: "/player/:id", Name: "PlayerDetail", View: "playerDetail"})
	require.NoError(t, err)

	m, err := table.Resolve("/player/42")
	require.NoError(t, err)
	assert.Equal(t, "42", m.Params["id"])
	assert.Empty(t, m.Props())
}

func TestTable_Routes(t *testing.T) {
	table := testTable(t)
	assert.Equal(t, 2, table.Len())

	routes := table.Routes()
	routes[0].Name = "changed"
	assert.Equal(t, "Players", table.Routes()[0].Name)
}
