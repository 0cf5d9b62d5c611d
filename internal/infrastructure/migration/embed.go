package migration

import "embed"

// Both directories hold the same schema history: goose reads annotated single
// files, golang-migrate reads up/down pairs.
var (
	//go:embed scripts/goose/*.sql
	gooseScripts embed.FS

	//go:embed scripts/migrate/*.sql
	migrateScripts embed.FS
)

const (
	gooseScriptsDir   = "scripts/goose"
	migrateScriptsDir = "scripts/migrate"
)
