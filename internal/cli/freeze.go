package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/project"
	"github.com/raivivek/makebio/internal/tui"
)

// FreezeCommand handles the freeze command
type FreezeCommand struct {
	fs filesystem.FileSystem
}

// NewFreezeCommand creates a new freeze command
func NewFreezeCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &FreezeCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "freeze <path>",
		Short: "Make a file or directory read-only",
		Long: `Strip write permission from a finished result so it cannot be
clobbered by a later run. Freezing is one-way; use chmod to undo it.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolP("recursive", "r", false, "Freeze directory contents recursively")

	return cobraCmd
}

// Run executes the freeze command
func (c *FreezeCommand) Run(cmd *cobra.Command, args []string) error {
	if _, _, err := resolveProject(c.fs, cmd); err != nil {
		return err
	}

	recursive, _ := cmd.Flags().GetBool("recursive")

	path, err := resolveArgPath(c.fs, cmd, args[0])
	if err != nil {
		return err
	}

	guard := project.NewGuard(c.fs)
	count, err := guard.Freeze(path, recursive)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if count == 1 {
		fmt.Fprintf(out, "%s Froze %s\n", tui.SuccessStyle.Render("✓"), tui.PathStyle.Render(path))
	} else {
		fmt.Fprintf(out, "%s Froze %d paths under %s\n", tui.SuccessStyle.Render("✓"), count, tui.PathStyle.Render(path))
	}
	return nil
}
