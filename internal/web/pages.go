package web

import (
	"errors"
	"strconv"

	"github.com/goserg/ffserver/internal/router"
	"github.com/goserg/ffserver/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// The client script sends these on in-app link clicks. A request without
// headerNavigate is a document load.
const (
	headerNavigate     = "X-Navigate"
	headerNavigateFrom = "X-Navigate-From"
	headerFullReload   = "X-Full-Reload"

	navigateFragment = "fragment"
)

var errPlayerNotFound = errors.New("player not found")

// loader fetches what a view needs. props holds the path parameters the
// route forwards.
type loader func(ctx *fiber.Ctx, props map[string]string) (data, int, error)

func (s *Server) handlePage(ctx *fiber.Ctx) error {
	ctx.Vary(headerNavigate)
	to := ctx.Path()
	if ctx.Get(headerNavigate) != navigateFragment {
		m, err := s.nav.Table().Resolve(to)
		if errors.Is(err, router.ErrNotFound) {
			return ctx.Next()
		}
		if err != nil {
			return err
		}
		return s.renderDocument(ctx, m)
	}

	from := ctx.Get(headerNavigateFrom)
	t, err := s.nav.Navigate(from, to)
	if errors.Is(err, router.ErrNotFound) {
		return ctx.Next()
	}
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"from":     from,
		"to":       to,
		"decision": t.Decision,
	}).Debug("navigation")
	if t.Decision == router.Reload {
		ctx.Set(headerFullReload, to)
		ctx.Status(fiber.StatusResetContent)
		return nil
	}
	return s.renderFragment(ctx, t.To)
}

// renderDocument serves a full page. Every document load starts a new
// client bootstrap.
func (s *Server) renderDocument(ctx *fiber.Ctx, m router.Match) error {
	d, status, err := s.loaders[m.Route.View](ctx, m.Props())
	if err != nil {
		return err
	}
	d.BootstrapID = uuid.NewString()
	s.log.WithFields(logrus.Fields{
		"route":     m.Route.Name,
		"bootstrap": d.BootstrapID,
	}).Debug("document load")
	return ctx.Status(status).Render(m.Route.View, d, viewLayout)
}

func (s *Server) renderFragment(ctx *fiber.Ctx, m router.Match) error {
	d, status, err := s.loaders[m.Route.View](ctx, m.Props())
	if err != nil {
		return err
	}
	return ctx.Status(status).Render(m.Route.View, d)
}

func (s *Server) loadPlayers(ctx *fiber.Ctx, _ map[string]string) (data, int, error) {
	players, err := s.playerService.ListPlayers(ctx.UserContext())
	if err != nil {
		return data{}, 0, err
	}
	return newData("Players").With("Players", players), fiber.StatusOK, nil
}

func (s *Server) loadPlayerDetail(ctx *fiber.Ctx, props map[string]string) (data, int, error) {
	notFound := newData("Player not found").WithErrors(errPlayerNotFound)
	id, err := strconv.Atoi(props["id"])
	if err != nil {
		return notFound, fiber.StatusNotFound, nil
	}
	player, err := s.playerService.GetPlayer(ctx.UserContext(), id)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.WithField("player_id", id).Warn("no player found")
		return notFound, fiber.StatusNotFound, nil
	}
	if err != nil {
		return data{}, 0, err
	}
	games, err := s.playerService.PlayerGames(ctx.UserContext(), id)
	if err != nil {
		return data{}, 0, err
	}
	return newData(player.Name).
		With("Player", player).
		With("Games", games), fiber.StatusOK, nil
}
