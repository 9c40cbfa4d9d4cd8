package web

import (
	"github.com/goserg/ffserver/internal/domain"
)

type playerResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Position      string   `json:"position"`
	Team          string   `json:"team"`
	FantasyPoints *float64 `json:"fantasy_points"`
}

type teamResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Division string `json:"division"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
}

type gameResponse struct {
	Date         string  `json:"date"`
	RushAttempts int     `json:"rush_attempts"`
	RushYards    float64 `json:"rush_yards"`
	RushTDs      int     `json:"rush_tds"`
	Targets      int     `json:"targets"`
	Receptions   int     `json:"receptions"`
	RecYards     float64 `json:"rec_yards"`
	RecTDs       int     `json:"rec_tds"`
}

type projectionResponse struct {
	PlayerID     int     `json:"player_id"`
	Games        int     `json:"games"`
	RushAttempts float64 `json:"rush_attempts"`
	RushYards    float64 `json:"rush_yards"`
	RushTDs      float64 `json:"rush_tds"`
	Receptions   float64 `json:"receptions"`
	RecYards     float64 `json:"rec_yards"`
	RecTDs       float64 `json:"rec_tds"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func convertPlayer(p domain.Player) playerResponse {
	return playerResponse{
		ID:            p.ID,
		Name:          p.Name,
		Position:      string(p.Position),
		Team:          p.Team.Name,
		FantasyPoints: p.FantasyPoints,
	}
}

func convertPlayers(players []domain.Player) []playerResponse {
	converted := make([]playerResponse, 0, len(players))
	for _, p := range players {
		converted = append(converted, convertPlayer(p))
	}
	return converted
}

func convertTeam(t domain.Team) teamResponse {
	return teamResponse{
		ID:       t.ID,
		Name:     t.Name,
		Division: t.Division,
		Wins:     t.Wins,
		Losses:   t.Losses,
	}
}

func convertTeams(teams []domain.Team) []teamResponse {
	converted := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		converted = append(converted, convertTeam(t))
	}
	return converted
}

func convertGames(games []domain.PlayerGame) []gameResponse {
	converted := make([]gameResponse, 0, len(games))
	for _, g := range games {
		converted = append(converted, gameResponse{
			Date:         formatDate(g.Date),
			RushAttempts: g.RushAttempts,
			RushYards:    g.RushYards,
			RushTDs:      g.RushTDs,
			Targets:      g.Targets,
			Receptions:   g.Receptions,
			RecYards:     g.RecYards,
			RecTDs:       g.RecTDs,
		})
	}
	return converted
}

func convertProjection(p domain.Projection) projectionResponse {
	return projectionResponse{
		PlayerID:     p.PlayerID,
		Games:        p.Games,
		RushAttempts: p.RushAttempts,
		RushYards:    p.RushYards,
		RushTDs:      p.RushTDs,
		Receptions:   p.Receptions,
		RecYards:     p.RecYards,
		RecTDs:       p.RecTDs,
	}
}
