package web

import (
	"github.com/goserg/ffserver/internal/router"
	"github.com/goserg/ffserver/internal/web/webpath"
)

const (
	viewPlayers      = "players"
	viewPlayerDetail = "playerDetail"
	viewLayout       = "layouts/main"
)

var pageRoutes = []router.Route{
	{Path: webpath.Home, Name: "Players", View: viewPlayers},
	{Path: webpath.Player, Name: "PlayerDetail", View: viewPlayerDetail, Props: true},
}

func newNavigator(reloadHome bool) (*router.Navigator, error) {
	table, err := router.New(pageRoutes...)
	if err != nil {
		return nil, err
	}
	if !reloadHome {
		return router.NewNavigator(table), nil
	}
	return router.NewNavigator(table, router.ReloadOnHome), nil
}
