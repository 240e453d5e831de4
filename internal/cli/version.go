package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version, overridden at release time with
// -ldflags "-X github.com/raivivek/makebio/internal/cli.Version=...".
var Version = "dev"

// NewVersionCommand creates a new version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the makebio version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "makebio %s\n", Version)
			return nil
		},
	}
}
