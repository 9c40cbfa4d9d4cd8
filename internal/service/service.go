package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goserg/ffserver/internal/cache/mem"
	"github.com/goserg/ffserver/internal/domain"
	"github.com/goserg/ffserver/internal/projection"
	"github.com/goserg/ffserver/internal/storage"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrEmptyName       = errors.New("empty player name")
)

type PlayerService struct {
	playerStorage storage.PlayerStorage
	teamStorage   storage.TeamStorage
	gameStorage   storage.GameStorage
	cache         *mem.Cache
	log           *logrus.Entry
}

func New(
	playerStorage storage.PlayerStorage,
	teamStorage storage.TeamStorage,
	gameStorage storage.GameStorage,
	l *logrus.Logger,
) *PlayerService {
	return &PlayerService{
		playerStorage: playerStorage,
		teamStorage:   teamStorage,
		gameStorage:   gameStorage,
		cache:         mem.New(),
		log:           l.WithField("from", "player-service"),
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	players, err := s.playerStorage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Update(players)
	return players, nil
}

// GetPlayer reads through the player cache while it is valid.
func (s *PlayerService) GetPlayer(ctx context.Context, id int) (domain.Player, error) {
	if s.cache.Valid() {
		if player, ok := s.cache.GetPlayer(id); ok {
			return player, nil
		}
	}
	return s.playerStorage.GetPlayer(ctx, id)
}

func (s *PlayerService) warmCache(ctx context.Context) error {
	if s.cache.Valid() {
		return nil
	}
	_, err := s.ListPlayers(ctx)
	return err
}

func (s *PlayerService) GetPlayerByName(ctx context.Context, name string) (domain.Player, error) {
	if err := s.warmCache(ctx); err != nil {
		return domain.Player{}, err
	}
	player, ok := s.cache.GetPlayerByName(name)
	if !ok {
		return domain.Player{}, fmt.Errorf("player %q: %w", name, storage.ErrNotFound)
	}
	return player, nil
}

// TopPlayers orders players by fantasy points, highest first.
func (s *PlayerService) TopPlayers(ctx context.Context, n int) ([]domain.Player, error) {
	if err := s.warmCache(ctx); err != nil {
		return nil, err
	}
	return s.cache.Top(n), nil
}

// PlayerGames fails with storage.ErrNotFound for an unknown player rather
// than returning an empty list.
func (s *PlayerService) PlayerGames(ctx context.Context, playerID int) ([]domain.PlayerGame, error) {
	_, err := s.playerStorage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.gameStorage.ListPlayerGames(ctx, playerID)
}

// ProjectNextGame projects every stat of the player's next game from their
// game log. Fewer than projection.MinGames games project zeros.
func (s *PlayerService) ProjectNextGame(ctx context.Context, playerID int) (domain.Projection, error) {
	games, err := s.PlayerGames(ctx, playerID)
	if err != nil {
		return domain.Projection{}, err
	}
	p := projection.NextGame(games)
	p.PlayerID = playerID
	return p, nil
}

func (s *PlayerService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teamStorage.ListTeams(ctx)
}

func (s *PlayerService) GetTeam(ctx context.Context, id int) (domain.Team, error) {
	return s.teamStorage.GetTeam(ctx, id)
}

func (s *PlayerService) GetTeamByName(ctx context.Context, name string) (domain.Team, error) {
	return s.teamStorage.GetTeamByName(ctx, name)
}

// AddPlayerIfNotExists reports whether the player was created. The team is
// looked up by its abbreviation.
func (s *PlayerService) AddPlayerIfNotExists(ctx context.Context, player domain.Player, teamName string) (domain.Player, bool, error) {
	log := s.log.WithFields(map[string]interface{}{
		"player_id": player.ID,
		"name":      player.Name,
	})
	if player.ID != 0 {
		existing, err := s.playerStorage.GetPlayer(ctx, player.ID)
		if err == nil {
			log.Debug("player already exists")
			return existing, false, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return domain.Player{}, false, err
		}
	}
	var err error
	if player.Name == "" {
		err = errors.Join(err, ErrEmptyName)
	}
	if !player.Position.Valid() {
		err = errors.Join(err, fmt.Errorf("%w: %q", ErrInvalidPosition, player.Position))
	}
	if err != nil {
		return domain.Player{}, false, err
	}
	team, err := s.teamStorage.GetTeamByName(ctx, teamName)
	if err != nil {
		return domain.Player{}, false, fmt.Errorf("team %q: %w", teamName, err)
	}
	player.Team = team
	added, err := s.playerStorage.AddPlayer(ctx, player)
	if err != nil {
		log.WithError(err).Error("failed to add player")
		return domain.Player{}, false, err
	}
	s.cache.Invalidate()
	log.Info("added new player")
	return added, true, nil
}

type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// ImportGames stores weekly stats for a player. Weeks already on record
// are skipped; other failures are collected and the import continues.
func (s *PlayerService) ImportGames(ctx context.Context, playerID int, games []domain.PlayerGame) (ImportResult, error) {
	if _, err := s.playerStorage.GetPlayer(ctx, playerID); err != nil {
		return ImportResult{}, err
	}
	var res ImportResult
	for _, game := range games {
		game.PlayerID = playerID
		_, err := s.gameStorage.AddPlayerGame(ctx, game)
		switch {
		case err == nil:
			res.Imported++
		case errors.Is(err, storage.ErrAlreadyExists):
			res.Skipped++
		default:
			s.log.WithError(err).WithField("date", game.Date.Format("2006-01-02")).Error("error importing stats")
			res.Errors = append(res.Errors, fmt.Errorf("week %s: %w", game.Date.Format("2006-01-02"), err))
		}
	}
	return res, nil
}
