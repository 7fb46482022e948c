package cmd

import (
	"fmt"

	"github.com/getdeskhelp/deskhelp-cli/config"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the deskhelp cli version",
	Long:  "Shows the deskhelp cli version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("version:", config.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
