package webpath

const (
	Home   = "/"
	Player = "/player/:id"
	Static = "/static"

	Api              = "/api"
	ApiPlayers       = Api + "/players"
	ApiGetPlayer     = ApiPlayers + "/:id<int>"
	ApiGetPlayerGame = ApiGetPlayer + "/games"
	ApiGetProjection = ApiGetPlayer + "/projection"
	ApiTeams         = Api + "/teams"
	ApiGetTeam       = ApiTeams + "/:id<int>"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Player":     "/player/",
		"Static":     Static,
		"ApiPlayers": ApiPlayers,
		"ApiTeams":   ApiTeams,
	}
}
