package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/project"
	"github.com/raivivek/makebio/internal/tui"
)

// UpdateCommand handles the update command
type UpdateCommand struct {
	fs  filesystem.FileSystem
	git git.Client
}

// NewUpdateCommand creates a new update command
func NewUpdateCommand(fs filesystem.FileSystem, gitClient git.Client) *cobra.Command {
	cmd := &UpdateCommand{fs: fs, git: gitClient}

	cobraCmd := &cobra.Command{
		Use:   "update",
		Short: "Re-sync makebio.toml with the repository head",
		Long: `Refresh the recorded last_commit field if commits were made outside of
makebio save, for example with plain git.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the update command
func (c *UpdateCommand) Run(cmd *cobra.Command, args []string) error {
	root, _, err := resolveProject(c.fs, cmd)
	if err != nil {
		return err
	}

	store := config.NewStore(c.fs)
	syncer := project.NewSynchronizer(c.fs, c.git.WithContext(cmd.Context()), store)

	result, err := syncer.Refresh(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Changed {
		fmt.Fprintf(out, "Already up to date at %s\n", shortHash(result.Current))
		return nil
	}
	fmt.Fprintf(out, "%s Updated last commit %s -> %s\n", tui.SuccessStyle.Render("✓"), shortHash(result.Previous), shortHash(result.Current))
	return nil
}
