package embedded

import "embed"

//go:embed "views"
var Views embed.FS

//go:embed "public"
var Public embed.FS

//go:embed "migrations"
var ServerMigrations embed.FS
