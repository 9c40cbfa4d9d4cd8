package web

import (
	"errors"

	"github.com/goserg/ffserver/internal/storage"

	"github.com/gofiber/fiber/v2"
)

const (
	msgPlayerNotFound = "Player not found"
	msgPlayerFailed   = "An error occurred while fetching player data"
	msgTeamNotFound   = "Team not found"
	msgTeamFailed     = "An error occurred while fetching team data"
)

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	players, err := s.playerService.ListPlayers(ctx.UserContext())
	if err != nil {
		s.log.WithError(err).Error("error listing players")
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: msgPlayerFailed})
	}
	return ctx.JSON(convertPlayers(players))
}

func (s *Server) handleGetPlayer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{Error: msgPlayerNotFound})
	}
	log := s.log.WithField("player_id", id)
	log.Debug("received request to fetch player")
	player, err := s.playerService.GetPlayer(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("no player found")
			return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{Error: msgPlayerNotFound})
		}
		log.WithError(err).Error("error fetching player")
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: msgPlayerFailed})
	}
	log.Info("player retrieved successfully")
	return ctx.JSON(convertPlayer(player))
}

func (s *Server) handleGetPlayerGames(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{Error: msgPlayerNotFound})
	}
	games, err := s.playerService.PlayerGames(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{Error: msgPlayerNotFound})
		}
		s.log.WithError(err).WithField("player_id", id).Error("error fetching player games")
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: msgPlayerFailed})
	}
	return ctx.JSON(convertGames(games))
}

func (s *Server) handleGetProjection(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{Error: msgPlayerNotFound})
	}
	p, err := s.playerService.ProjectNextGame(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{Error: msgPlayerNotFound})
		}
		s.log.WithError(err).WithField("player_id", id).Error("error projecting next game")
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: msgPlayerFailed})
	}
	return ctx.JSON(convertProjection(p))
}

func (s *Server) handleListTeams(ctx *fiber.Ctx) error {
	teams, err := s.playerService.ListTeams(ctx.UserContext())
	if err != nil {
		s.log.WithError(err).Error("error listing teams")
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: msgTeamFailed})
	}
	return ctx.JSON(convertTeams(teams))
}

func (s *Server) handleGetTeam(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{Error: msgTeamNotFound})
	}
	log := s.log.WithField("team_id", id)
	log.Debug("received request to fetch team")
	team, err := s.playerService.GetTeam(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("no team found")
			return ctx.Status(fiber.StatusNotFound).JSON(errorResponse{Error: msgTeamNotFound})
		}
		log.WithError(err).Error("error fetching team")
		return ctx.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: msgTeamFailed})
	}
	log.Info("team retrieved successfully")
	return ctx.JSON(convertTeam(team))
}
