package cmd

import (
	"encoding/json"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lloydmeta/notably/internal/config"
	mysqlCommon "github.com/lloydmeta/notably/internal/infra/mysql/common"
)

const redacted = "xxxxx"

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.AddCommand(showConfigCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show information",
	Long:  `Sometimes you just need to know more`,
}

var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config",
	Long:  `Renders the config that we end up using, with secrets redacted`,
	Run: func(cmd *cobra.Command, args []string) {
		shown := redactedConfig(appConfig)
		out, err := json.MarshalIndent(&shown, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Error marshalling config to JSON")
		} else {
			log.Info().Msg(string(out))
		}
	},
}

func redactedConfig(app config.App) config.App {
	app.Database.Url = mysqlCommon.Redact(app.Database.Url)
	if app.Cache != nil {
		cache := *app.Cache
		cache.Url = redactUrl(cache.Url)
		app.Cache = &cache
	}
	if app.ApmClient != nil && app.ApmClient.SecretToken != nil {
		apmClient := *app.ApmClient
		token := redacted
		apmClient.SecretToken = &token
		app.ApmClient = &apmClient
	}
	return app
}

func redactUrl(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable>"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), redacted)
		}
	}
	return u.String()
}
