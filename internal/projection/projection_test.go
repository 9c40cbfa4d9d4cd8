package projection

import (
	"testing"
	"time"

	"github.com/goserg/ffserver/internal/domain"
	"github.com/stretchr/testify/assert"
)

func week(d int) time.Time {
	return time.Date(2024, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestNextGame(t *testing.T) {
	tests := []struct {
		name  string
		games []domain.PlayerGame
		want  domain.Projection
	}{
		{
			name: "no games",
			want: domain.Projection{},
		},
		{
			name: "single game projects zeros",
			games: []domain.PlayerGame{
				{Date: week(8), RushAttempts: 18, RushYards: 84, RushTDs: 1},
			},
			want: domain.Projection{Games: 1},
		},
		{
			name: "rising trend",
			games: []domain.PlayerGame{
				{Date: week(8), RushAttempts: 10, RushYards: 40, Receptions: 2, RecYards: 10},
				{Date: week(15), RushAttempts: 20, RushYards: 80, Receptions: 2, RecYards: 20},
				{Date: week(22), RushAttempts: 30, RushYards: 120, Receptions: 2, RecYards: 30},
			},
			want: domain.Projection{
				Games:        3,
				RushAttempts: 40,
				RushYards:    160,
				Receptions:   2,
				RecYards:     40,
			},
		},
		{
			name: "games out of date order",
			games: []domain.PlayerGame{
				{Date: week(22), RushAttempts: 30},
				{Date: week(8), RushAttempts: 10},
				{Date: week(15), RushAttempts: 20},
			},
			want: domain.Projection{Games: 3, RushAttempts: 40},
		},
		{
			name: "falling trend stops at zero",
			games: []domain.PlayerGame{
				{Date: week(8), RushTDs: 2, RecTDs: 1},
				{Date: week(15), RushTDs: 0, RecTDs: 1},
			},
			want: domain.Projection{Games: 2, RecTDs: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextGame(tt.games)
			assert.Equal(t, tt.want.Games, got.Games)
			assert.InDelta(t, tt.want.RushAttempts, got.RushAttempts, 1e-9)
			assert.InDelta(t, tt.want.RushYards, got.RushYards, 1e-9)
			assert.InDelta(t, tt.want.RushTDs, got.RushTDs, 1e-9)
			assert.InDelta(t, tt.want.Receptions, got.Receptions, 1e-9)
			assert.InDelta(t, tt.want.RecYards, got.RecYards, 1e-9)
			assert.InDelta(t, tt.want.RecTDs, got.RecTDs, 1e-9)
		})
	}
}
