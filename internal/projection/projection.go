// Package projection estimates a player's next game from their game log.
package projection

import (
	"sort"

	"github.com/goserg/ffserver/internal/domain"

	"gonum.org/v1/gonum/stat"
)

// MinGames is the shortest history a trend is fitted to. Shorter logs
// project zero for every stat.
const MinGames = 2

// NextGame fits a least-squares line to each stat over the game index
// (games in date order) and evaluates it one game past the last. A
// negative estimate is reported as zero.
func NextGame(games []domain.PlayerGame) domain.Projection {
	p := domain.Projection{Games: len(games)}
	if len(games) < MinGames {
		return p
	}
	sorted := make([]domain.PlayerGame, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	xs := make([]float64, len(sorted))
	for i := range xs {
		xs[i] = float64(i)
	}
	next := float64(len(sorted))
	column := func(stat func(g domain.PlayerGame) float64) float64 {
		ys := make([]float64, len(sorted))
		for i, g := range sorted {
			ys[i] = stat(g)
		}
		return trend(xs, ys, next)
	}

	p.RushAttempts = column(func(g domain.PlayerGame) float64 { return float64(g.RushAttempts) })
	p.RushYards = column(func(g domain.PlayerGame) float64 { return g.RushYards })
	p.RushTDs = column(func(g domain.PlayerGame) float64 { return float64(g.RushTDs) })
	p.Receptions = column(func(g domain.PlayerGame) float64 { return float64(g.Receptions) })
	p.RecYards = column(func(g domain.PlayerGame) float64 { return g.RecYards })
	p.RecTDs = column(func(g domain.PlayerGame) float64 { return float64(g.RecTDs) })
	return p
}

func trend(xs, ys []float64, at float64) float64 {
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	y := alpha + beta*at
	if y < 0 {
		return 0
	}
	return y
}
