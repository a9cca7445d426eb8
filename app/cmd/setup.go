package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	mysqlCommon "github.com/lloydmeta/notably/internal/infra/mysql/common"
	"github.com/lloydmeta/notably/internal/infra/server"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run notably setup",
	Long:  "Creates the tables notably needs if they are not there yet. Existing tables are left alone.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		db, err := mysqlCommon.NewClient(appConfig.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not set up MySQL client")
		}
		defer func() {
			_ = db.Close()
		}()
		if err := mysqlCommon.WaitUntilReachable(ctx, db, appConfig.Database.ConnectTimeout); err != nil {
			log.Fatal().Err(err).Str("database", mysqlCommon.Redact(appConfig.Database.Url)).Msg("Database unreachable")
		}
		if err := server.NewSetup(db).RunIfNeeded(ctx); err != nil {
			log.Fatal().Err(err).Msg("Setup failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
