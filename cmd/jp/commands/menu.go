package commands

import (
	"context"
	"os"

	"github.com/postline-io/placeholder-client/internal/constants"
	"github.com/postline-io/placeholder-client/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewMenuCommand creates the interactive menu command.
func NewMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		Long:  "Run the numbered interactive menu offering the six post operations plus exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return constants.ErrNotATerminal
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			return tui.Run(context.Background(), client)
		},
	}
}
