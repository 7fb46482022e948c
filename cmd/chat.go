package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/getdeskhelp/deskhelp-cli/cmd/component/chat"
	"github.com/getdeskhelp/deskhelp-cli/display"
	"github.com/getdeskhelp/deskhelp-cli/session"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var programOutput = termenv.NewOutput(os.Stdout, termenv.WithColorCache(true))

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive help desk session",
	Long: `Start an interactive help desk session.

  Ask as many questions as you like; answered questions stay on screen
  for the rest of the session. History is not persisted.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cl := newClient()
		s := session.New(cl)

		// cancelling the context on the way out stops any poll cycle
		// that is still pending
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		m := chat.NewModel(ctx, s)
		p := tea.NewProgram(m, tea.WithOutput(programOutput), tea.WithContext(ctx), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			display.ErrorWithSupportCTA(fmt.Errorf("chat session failed: %w", err))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
