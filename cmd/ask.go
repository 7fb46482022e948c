package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/getdeskhelp/deskhelp-cli/display"
	"github.com/getdeskhelp/deskhelp-cli/render"
	"github.com/getdeskhelp/deskhelp-cli/session"
	"github.com/getdeskhelp/deskhelp-cli/theme"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the help desk a question and wait for the answer",
	Args:  cobra.ArbitraryArgs,
	Example: `
  deskhelp ask "what is the remote work hours policy?"
  deskhelp ask "how do I request a replacement laptop?"
  deskhelp ask "who approves travel expenses?"
  `,
	Long: `
  Ask the help desk a question. Deskhelp submits it, waits until the
  answer is ready, and prints it rendered for the terminal.
  `,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "ask")

		cl := newClient()

		// be defensive: users can pass questions as one string or multiple strings
		question := strings.Join(args[:], " ")

		if strings.TrimSpace(question) == "" {
			// interactive mode
			text := huh.NewText().Title("What do you want to ask the help desk?").Value(&question)
			form := huh.NewForm(huh.NewGroup(text)).WithTheme(theme.New())
			if err := form.Run(); err != nil {
				display.ErrorWithSupportCTA(err)
				os.Exit(1)
			}
		}

		s := session.New(cl, session.WithMaxAttempts(maxAttemptsFlag))

		if err := s.Submit(ctx, question); err != nil {
			if errors.Is(err, session.ErrEmptyQuestion) {
				return
			}
			logger.Debug("submit failed", "error", err)
			display.ErrorWithSupportCTA(errors.New(s.ErrorMessage()))
			os.Exit(1)
		}

		var waitErr error
		if err := spinner.New().
			Title("Waiting for the help desk...").
			Action(func() { waitErr = s.Wait(ctx) }).
			Run(); err != nil {
			display.ErrorWithSupportCTA(err)
			os.Exit(1)
		}

		if waitErr != nil {
			logger.Debug("poll failed", "error", waitErr)
			display.ErrorWithSupportCTA(errors.New(s.ErrorMessage()))
			os.Exit(1)
		}

		out, err := render.Markdown(s.Answer())
		if err != nil {
			logger.Debug("render failed", "error", err)
			// fall back to the raw markdown
			fmt.Println(s.Answer())
			return
		}
		fmt.Print(out)
	},
}

var maxAttemptsFlag int

func init() {
	askCmd.Flags().IntVar(&maxAttemptsFlag, "max-attempts", 0, "Give up after this many poll attempts (0 = wait forever)")
	rootCmd.AddCommand(askCmd)
}
