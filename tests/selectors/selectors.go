package sel

const (
	Logo = ".brand-logo"
	Body = "body"
	View = "#view"

	PageTitle = "#page-title"

	PlayerListRow     = "#player-list-row"
	PlayerListRowName = "#player-list-row-name"
	PlayerListRowLink = PlayerListRowName + " a"

	BackHome = "#back-home"
)

const BootstrapAttr = "data-bootstrap"
