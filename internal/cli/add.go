package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/project"
	"github.com/raivivek/makebio/internal/tui"
)

// AddEntryCommand handles add-analysis and add-data
type AddEntryCommand struct {
	fs       filesystem.FileSystem
	category project.Category
}

// NewAddAnalysisCommand creates a new add-analysis command
func NewAddAnalysisCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &AddEntryCommand{fs: fs, category: project.CategoryAnalysis}

	cobraCmd := &cobra.Command{
		Use:   "add-analysis <name>",
		Short: "Add a new analysis entry",
		Long: `Create a same-named directory pair under control/ and work/.

By default the name is prefixed with today's date, e.g.
2019-04-20_createTracks.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("prefix", true, "Prefix the entry name with today's date")

	return cobraCmd
}

// NewAddDataCommand creates a new add-data command
func NewAddDataCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &AddEntryCommand{fs: fs, category: project.CategoryData}

	cobraCmd := &cobra.Command{
		Use:   "add-data <name>",
		Short: "Add a new data entry",
		Long: `Create a same-named directory pair under control/ and data/.

By default the name is prefixed with today's date, e.g.
2019-05-01_fastq.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("prefix", true, "Prefix the entry name with today's date")

	return cobraCmd
}

// Run executes the command
func (c *AddEntryCommand) Run(cmd *cobra.Command, args []string) error {
	root, _, err := resolveProject(c.fs, cmd)
	if err != nil {
		return err
	}

	prefix, _ := cmd.Flags().GetBool("prefix")

	manager := project.NewEntryManager(c.fs)
	entry, err := manager.AddEntry(root, project.AddOptions{
		Name:       args[0],
		Category:   c.category,
		DatePrefix: prefix,
		Now:        time.Now(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Added %s entry %s\n", tui.SuccessStyle.Render("✓"), entry.Category, entry.Name)
	fmt.Fprintf(out, "  %s\n", tui.PathStyle.Render(entry.ControlPath))
	fmt.Fprintf(out, "  %s\n", tui.PathStyle.Render(entry.TreePath))

	return nil
}
