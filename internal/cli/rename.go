package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/project"
	"github.com/raivivek/makebio/internal/tui"
)

// RenameAnalysisCommand handles the rename-analysis command
type RenameAnalysisCommand struct {
	fs filesystem.FileSystem
}

// NewRenameAnalysisCommand creates a new rename-analysis command
func NewRenameAnalysisCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &RenameAnalysisCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "rename-analysis <old> <new>",
		Short: "Rename an analysis entry",
		Long: `Relocate an entry's control/ and work/ directory pair and repair
its symlink. With --dry-run the steps are printed and nothing is changed.`,
		Args: cobra.ExactArgs(2),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("dry-run", false, "Show what would be renamed without doing it")

	return cobraCmd
}

// Run executes the rename-analysis command
func (c *RenameAnalysisCommand) Run(cmd *cobra.Command, args []string) error {
	root, _, err := resolveProject(c.fs, cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	renamer := project.NewRenamer(c.fs)
	plan, err := renamer.Rename(root, args[0], args[1], dryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintf(out, "Would perform:\n")
		for _, step := range plan.Steps {
			fmt.Fprintf(out, "  %-7s %s -> %s\n", step.Op, tui.PathStyle.Render(step.From), tui.PathStyle.Render(step.To))
		}
		return nil
	}

	fmt.Fprintf(out, "%s Renamed %s to %s\n", tui.SuccessStyle.Render("✓"), args[0], args[1])
	return nil
}
