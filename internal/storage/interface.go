package storage

import (
	"context"
	"errors"

	"github.com/goserg/ffserver/internal/domain"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type PlayerStorage interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id int) (domain.Player, error)
	// AddPlayer keeps a non-zero ID and lets the database assign one
	// otherwise.
	AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error)
}

type TeamStorage interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	GetTeam(ctx context.Context, id int) (domain.Team, error)
	GetTeamByName(ctx context.Context, name string) (domain.Team, error)
}

type GameStorage interface {
	ListPlayerGames(ctx context.Context, playerID int) ([]domain.PlayerGame, error)
	AddPlayerGame(ctx context.Context, game domain.PlayerGame) (domain.PlayerGame, error)
}
