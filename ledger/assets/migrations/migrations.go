package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/assetbridge/chainext/db"
	"github.com/assetbridge/chainext/db/types"
	"github.com/assetbridge/chainext/log"
)

//go:embed assets0001.sql
var mig001 string

// RunMigrations brings the asset ledger schema up to date
func RunMigrations(logger *log.Logger, database *sql.DB) error {
	migrations := []types.Migration{
		{
			ID:  "assets0001",
			SQL: mig001,
		},
	}

	return db.RunMigrationsDB(logger, database, migrations)
}
