package cmd

import (
	"log/slog"
	"os"

	"github.com/getdeskhelp/deskhelp-cli/client"
	"github.com/getdeskhelp/deskhelp-cli/client/local"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deskhelp",
	Short: "Ask your internal help desk questions from the command line",
	Long:  `Ask your internal help desk questions from the command line and get the answers right in your terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logLevel := slog.LevelInfo
		if debugFlag {
			logLevel = slog.LevelDebug
		}
		textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     logLevel,
		})
		logger := slog.New(textHandler)
		slog.SetDefault(logger)
		cmd.SetContext(ctxWithLogger(cmd.Context(), logger))
	},
}

var (
	debugFlag bool
	localFlag bool
)

// newClient picks the backend for this invocation: the configured help
// desk service, or the built-in local responder when --local is set.
func newClient() client.Client {
	if localFlag {
		return local.New()
	}
	return client.New()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&localFlag, "local", false, "Answer with the built-in local responder instead of a backend")
}
