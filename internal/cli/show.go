package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/project"
	"github.com/raivivek/makebio/internal/tui"
)

// ShowCommand handles the show command
type ShowCommand struct {
	fs  filesystem.FileSystem
	git git.Client
}

// NewShowCommand creates a new show command
func NewShowCommand(fs filesystem.FileSystem, gitClient git.Client) *cobra.Command {
	cmd := &ShowCommand{fs: fs, git: gitClient}

	cobraCmd := &cobra.Command{
		Use:   "show",
		Short: "Show project configuration and entries",
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().Bool("all", false, "List every entry in the project")
	cobraCmd.Flags().Bool("latest", false, "Show only the most recent entry")

	return cobraCmd
}

// Run executes the show command
func (c *ShowCommand) Run(cmd *cobra.Command, args []string) error {
	root, cfg, err := resolveProject(c.fs, cmd)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	latest, _ := cmd.Flags().GetBool("latest")

	out := cmd.OutOrStdout()
	lister := project.NewLister(c.fs)

	if latest {
		entry, err := lister.Latest(root)
		if err != nil {
			return err
		}
		printEntry(cmd, entry)
		return nil
	}

	if all {
		entries, err := lister.Entries(root)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintf(out, "No entries yet\n")
			return nil
		}
		for _, entry := range entries {
			printEntry(cmd, entry)
		}
		return nil
	}

	fmt.Fprintf(out, "%s\n", tui.TitleStyle.Render(cfg.Name))
	fmt.Fprintf(out, "  Author:   %s <%s>\n", cfg.Author, cfg.Email)
	fmt.Fprintf(out, "  Root:     %s\n", tui.PathStyle.Render(cfg.Params.Root))
	fmt.Fprintf(out, "  Scratch:  %s\n", tui.PathStyle.Render(cfg.Params.LinkTo))
	fmt.Fprintf(out, "  Created:  %s\n", cfg.Metadata.CreatedOn)

	if !cfg.Synchronized() {
		fmt.Fprintf(out, "  Snapshot: none\n")
		return nil
	}

	fmt.Fprintf(out, "  Snapshot: %s\n", shortHash(cfg.Metadata.LastCommit))
	commits, err := c.git.WithContext(cmd.Context()).Log(root, 1)
	if err == nil && len(commits) > 0 {
		fmt.Fprintf(out, "  Head:     %s %s (%s)\n", shortHash(commits[0].Hash), commits[0].Subject, commits[0].Date)
	}
	return nil
}

func printEntry(cmd *cobra.Command, entry *project.Entry) {
	created := entry.CreatedOn
	if created == "" {
		created = "unknown"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-12s %s\n", created, entry.Category, entry.Name)
}
