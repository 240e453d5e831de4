package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/project"
	"github.com/raivivek/makebio/internal/tui"
)

// SaveCommand handles the save command
type SaveCommand struct {
	fs  filesystem.FileSystem
	git git.Client
}

// NewSaveCommand creates a new save command
func NewSaveCommand(fs filesystem.FileSystem, gitClient git.Client) *cobra.Command {
	cmd := &SaveCommand{fs: fs, git: gitClient}

	cobraCmd := &cobra.Command{
		Use:   "save",
		Short: "Snapshot the project into git",
		Long: `Stage and commit everything that changed under the project root and
record the commit hash in makebio.toml. The repository is created on
first use if it does not exist yet.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the save command
func (c *SaveCommand) Run(cmd *cobra.Command, args []string) error {
	root, _, err := resolveProject(c.fs, cmd)
	if err != nil {
		return err
	}

	store := config.NewStore(c.fs)
	syncer := project.NewSynchronizer(c.fs, c.git.WithContext(cmd.Context()), store)

	result, err := syncer.Save(root, time.Now())
	if errors.Is(err, project.ErrNothingToDo) {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing to save, working tree is clean\n")
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "%s %s\n", tui.WarningStyle.Render("⚠"), warning)
	}
	fmt.Fprintf(out, "%s Saved %d change(s) as %s\n", tui.SuccessStyle.Render("✓"), result.Changes, shortHash(result.Commit))
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
