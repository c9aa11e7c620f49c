package commands

import (
	"fmt"

	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/pkg/database"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the portfolio tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(postgres.Models()...); err != nil {
			return err
		}
		color.Green("Tables are up to date")
		return nil
	},
}

func openDatabase() (*database.DB, error) {
	if globalConfig.DBUrl == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	return database.Open(globalConfig.DBUrl, globalConfig.GinMode != gin.ReleaseMode)
}
