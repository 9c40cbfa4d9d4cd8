package sqlite

import (
	"time"

	"github.com/goserg/ffserver/gen/model"
	"github.com/goserg/ffserver/internal/domain"
)

const dateLayout = time.DateOnly

type playerRow struct {
	model.Players
	Teams model.Teams
}

func convertTeamToDomain(team model.Teams) domain.Team {
	t := domain.Team{
		ID:       int(team.ID),
		Name:     team.Name,
		Division: team.Division,
	}
	if team.Wins != nil {
		t.Wins = int(*team.Wins)
	}
	if team.Losses != nil {
		t.Losses = int(*team.Losses)
	}
	return t
}

func convertTeamsToDomain(teams []model.Teams) []domain.Team {
	converted := make([]domain.Team, 0, len(teams))
	for _, team := range teams {
		converted = append(converted, convertTeamToDomain(team))
	}
	return converted
}

func convertPlayerToDomain(row playerRow) domain.Player {
	return domain.Player{
		ID:            int(row.ID),
		Name:          row.Name,
		Position:      domain.Position(row.Position),
		FantasyPoints: row.FantasyPoints,
		Team:          convertTeamToDomain(row.Teams),
	}
}

func convertPlayersToDomain(rows []playerRow) []domain.Player {
	converted := make([]domain.Player, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, convertPlayerToDomain(row))
	}
	return converted
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:            int32(player.ID),
		Name:          player.Name,
		Position:      string(player.Position),
		FantasyPoints: player.FantasyPoints,
		TeamID:        int32(player.Team.ID),
	}
}

func convertGamesToDomain(games []model.PlayerGames) ([]domain.PlayerGame, error) {
	converted := make([]domain.PlayerGame, 0, len(games))
	for _, game := range games {
		date, err := time.Parse(dateLayout, game.GameDate)
		if err != nil {
			return nil, err
		}
		converted = append(converted, domain.PlayerGame{
			ID:           int(game.ID),
			PlayerID:     int(game.PlayerID),
			Date:         date,
			RushAttempts: int(game.RushAttempts),
			RushYards:    game.RushYards,
			RushTDs:      int(game.RushTds),
			Targets:      int(game.Targets),
			Receptions:   int(game.Receptions),
			RecYards:     game.RecYards,
			RecTDs:       int(game.RecTds),
		})
	}
	return converted, nil
}

func convertGameFromDomain(game domain.PlayerGame) model.PlayerGames {
	return model.PlayerGames{
		ID:           int32(game.ID),
		PlayerID:     int32(game.PlayerID),
		GameDate:     game.Date.Format(dateLayout),
		RushAttempts: int32(game.RushAttempts),
		RushYards:    game.RushYards,
		RushTds:      int32(game.RushTDs),
		Targets:      int32(game.Targets),
		Receptions:   int32(game.Receptions),
		RecYards:     game.RecYards,
		RecTds:       int32(game.RecTDs),
	}
}
