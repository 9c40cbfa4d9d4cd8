package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/goserg/ffserver/gen/model"
	"github.com/goserg/ffserver/gen/table"
	"github.com/goserg/ffserver/internal/config"
	"github.com/goserg/ffserver/internal/domain"
	"github.com/goserg/ffserver/internal/migrate"
	"github.com/goserg/ffserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var (
	_ storage.PlayerStorage = (*Storage)(nil)
	_ storage.TeamStorage   = (*Storage)(nil)
	_ storage.GameStorage   = (*Storage)(nil)
)

var migrateUp = migrate.UpServerDB

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrateUp(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.WithField("file", cfg.SqliteFile).Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func selectPlayers() sqlite.SelectStatement {
	return table.Players.
		SELECT(
			table.Players.AllColumns,
			table.Teams.AllColumns,
		).
		FROM(table.Players.INNER_JOIN(table.Teams, table.Teams.ID.EQ(table.Players.TeamID)))
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var rows []playerRow
	err := selectPlayers().
		ORDER_BY(table.Players.ID.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(rows), nil
}

func (s *Storage) GetPlayer(ctx context.Context, id int) (domain.Player, error) {
	var row playerRow
	err := selectPlayers().
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(id)))).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		return domain.Player{}, mapError(err)
	}
	return convertPlayerToDomain(row), nil
}

func (s *Storage) AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	columns := table.Players.MutableColumns
	if player.ID != 0 {
		columns = table.Players.AllColumns
	}
	res, err := table.Players.
		INSERT(columns).
		MODEL(convertPlayerFromDomain(player)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Player{}, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Player{}, err
	}
	return s.GetPlayer(ctx, int(id))
}

func (s *Storage) ListTeams(ctx context.Context) ([]domain.Team, error) {
	var teams []model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		ORDER_BY(table.Teams.ID.ASC()).
		QueryContext(ctx, s.db, &teams)
	if err != nil {
		return nil, err
	}
	return convertTeamsToDomain(teams), nil
}

func (s *Storage) GetTeam(ctx context.Context, id int) (domain.Team, error) {
	return s.getTeam(ctx, table.Teams.ID.EQ(sqlite.Int(int64(id))))
}

func (s *Storage) GetTeamByName(ctx context.Context, name string) (domain.Team, error) {
	return s.getTeam(ctx, table.Teams.Name.EQ(sqlite.String(name)))
}

func (s *Storage) getTeam(ctx context.Context, where sqlite.BoolExpression) (domain.Team, error) {
	var team model.Teams
	err := table.Teams.
		SELECT(table.Teams.AllColumns).
		FROM(table.Teams).
		WHERE(where).
		QueryContext(ctx, s.db, &team)
	if err != nil {
		return domain.Team{}, mapError(err)
	}
	return convertTeamToDomain(team), nil
}

func (s *Storage) ListPlayerGames(ctx context.Context, playerID int) ([]domain.PlayerGame, error) {
	var games []model.PlayerGames
	err := table.PlayerGames.
		SELECT(table.PlayerGames.AllColumns).
		FROM(table.PlayerGames).
		WHERE(table.PlayerGames.PlayerID.EQ(sqlite.Int(int64(playerID)))).
		ORDER_BY(table.PlayerGames.GameDate.ASC()).
		QueryContext(ctx, s.db, &games)
	if err != nil {
		return nil, err
	}
	return convertGamesToDomain(games)
}

func (s *Storage) AddPlayerGame(ctx context.Context, game domain.PlayerGame) (domain.PlayerGame, error) {
	res, err := table.PlayerGames.
		INSERT(table.PlayerGames.MutableColumns).
		MODEL(convertGameFromDomain(game)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.PlayerGame{}, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.PlayerGame{}, err
	}
	game.ID = int(id)
	return game, nil
}

func mapError(err error) error {
	if errors.Is(err, qrm.ErrNoRows) {
		return storage.ErrNotFound
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return storage.ErrAlreadyExists
		case sqlite3.ErrConstraintForeignKey:
			return storage.ErrNotFound
		}
	}
	return err
}
