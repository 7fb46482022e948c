package cmd

import (
	"fmt"
	"net/url"

	"github.com/getdeskhelp/deskhelp-cli/config"
	"github.com/getdeskhelp/deskhelp-cli/display"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or set the help desk backend for this machine",
	Example: `
  deskhelp config
  deskhelp config --api-host http://helpdesk.internal:8000
  `,
	Long: `
  Show or set the base url of the help desk backend.

  Without flags, config prints the host deskhelp currently talks to.
  `,
	Run: func(_ *cobra.Command, _ []string) {
		if apiHostFlag == "" {
			display.Info("api host: " + config.APIHost())
			return
		}

		if _, err := url.ParseRequestURI(apiHostFlag); err != nil {
			display.FatalErr(fmt.Errorf("invalid api host %q: %w", apiHostFlag, err))
		}

		cfg, err := config.LoadFromFile()
		if err != nil {
			cfg = &config.Config{}
		}
		cfg.APIHost = apiHostFlag
		if err := cfg.Save(); err != nil {
			display.FatalErr(err)
		}
		display.Success("deskhelp will use " + apiHostFlag)
	},
}

var apiHostFlag string

func init() {
	configCmd.Flags().StringVar(&apiHostFlag, "api-host", "", "Base url of the help desk backend")
	rootCmd.AddCommand(configCmd)
}
