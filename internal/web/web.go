package web

import (
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "github.com/goserg/ffserver"
	"github.com/goserg/ffserver/internal/config"
	"github.com/goserg/ffserver/internal/router"
	"github.com/goserg/ffserver/internal/service"
	"github.com/goserg/ffserver/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"
)

type Server struct {
	playerService *service.PlayerService
	nav           *router.Navigator
	loaders       map[string]loader
	app           *fiber.App
	cfg           config.Server
	log           *logrus.Entry
}

func New(ps *service.PlayerService, cfg config.Server, l *logrus.Logger) (*Server, error) {
	nav, err := newNavigator(cfg.ReloadHome)
	if err != nil {
		return nil, err
	}
	server := Server{
		playerService: ps,
		nav:           nav,
		cfg:           cfg,
		log:           l.WithField("from", "web"),
	}
	server.loaders = map[string]loader{
		viewPlayers:      server.loadPlayers,
		viewPlayerDetail: server.loadPlayerDetail,
	}
	for _, route := range nav.Table().Routes() {
		if _, ok := server.loaders[route.View]; !ok {
			return nil, &missingViewError{route: route}
		}
	}

	viewsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	publicFS, err := fs.Sub(embedded.Public, "public")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("FormatPoints", formatPoints)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestLogger(server.log))
	app.Use(webpath.Static, filesystem.New(filesystem.Config{
		Root: http.FS(publicFS),
	}))
	app.Use(webpath.Api, cors.New())

	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Get(webpath.ApiGetPlayer, server.handleGetPlayer)
	app.Get(webpath.ApiGetPlayerGame, server.handleGetPlayerGames)
	app.Get(webpath.ApiGetProjection, server.handleGetProjection)
	app.Get(webpath.ApiTeams, server.handleListTeams)
	app.Get(webpath.ApiGetTeam, server.handleGetTeam)

	for _, route := range nav.Table().Routes() {
		app.Get(route.Path, server.handlePage)
	}

	server.app = app
	return &server, nil
}

type missingViewError struct {
	route router.Route
}

func (e *missingViewError) Error() string {
	return "route " + e.route.Name + ": no loader for view " + strconv.Quote(e.route.View)
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.log.WithFields(logrus.Fields{
		"addr":        addr,
		"tls":         s.cfg.TLS(),
		"reload_home": s.cfg.ReloadHome,
	}).Info("web server started")
	if s.cfg.TLS() {
		return s.app.ListenTLS(addr, s.cfg.CertFile, s.cfg.KeyFile)
	}
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func requestLogger(log *logrus.Entry) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		log.WithFields(logrus.Fields{
			"method":  ctx.Method(),
			"path":    ctx.Path(),
			"status":  ctx.Response().StatusCode(),
			"latency": time.Since(start),
		}).Debug("request")
		return err
	}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatPoints(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', 1, 64)
}
