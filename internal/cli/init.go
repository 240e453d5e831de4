package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/project"
	"github.com/raivivek/makebio/internal/tui"
	"github.com/raivivek/makebio/internal/tui/components"
	"github.com/raivivek/makebio/internal/tui/initform"
)

// InitCommand handles the init command
type InitCommand struct {
	fs  filesystem.FileSystem
	git git.Client
}

// NewInitCommand creates a new init command
func NewInitCommand(fs filesystem.FileSystem, gitClient git.Client) *cobra.Command {
	cmd := &InitCommand{fs: fs, git: gitClient}

	cobraCmd := &cobra.Command{
		Use:   "init <src> <linkto>",
		Short: "Initialize a new project",
		Long: `Set up the two-tier directory structure for a new project.

The skeleton is created at <src>; bulk data directories are created under
<linkto>/<name> and linked in as work/ and data/. With --git the project
is also put under version control with a suitable .gitignore.`,
		Args: cobra.ExactArgs(2),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("git", true, "Initialize version control")
	cobraCmd.Flags().String("author", "", "Author name (skips the prompt)")
	cobraCmd.Flags().String("email", "", "Author email (skips the prompt)")
	cobraCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cobraCmd
}

// Run executes the init command
func (c *InitCommand) Run(cmd *cobra.Command, args []string) error {
	src, err := absPath(args[0])
	if err != nil {
		return err
	}
	linkto, err := absPath(args[1])
	if err != nil {
		return err
	}

	initGit, _ := cmd.Flags().GetBool("git")
	author, _ := cmd.Flags().GetString("author")
	email, _ := cmd.Flags().GetString("email")
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		confirmed, err := components.RunConfirm(fmt.Sprintf("Configure project at %s?", tui.PathStyle.Render(src)))
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if author == "" {
		result, err := initform.NewFlow(config.LoadDefaults(c.fs)).Run()
		if err != nil {
			return fmt.Errorf("failed to run prompt: %w", err)
		}
		if result == nil {
			return nil
		}
		author, email = result.Author, result.Email
	}

	provisioner := project.NewProvisioner(c.fs, c.git, config.NewStore(c.fs))
	result, err := provisioner.Initialize(project.InitOptions{
		Src:     src,
		LinkTo:  linkto,
		Author:  author,
		Email:   email,
		InitGit: initGit,
		Now:     time.Now(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Project %s initialized\n", tui.SuccessStyle.Render("✓"), result.Config.Name)
	fmt.Fprintf(out, "  root:    %s\n", tui.PathStyle.Render(result.Root))
	fmt.Fprintf(out, "  scratch: %s\n", tui.PathStyle.Render(result.ScratchRoot))
	fmt.Fprintf(out, "  config:  %s\n", tui.PathStyle.Render(config.NewStore(c.fs).Path(result.Root)))

	if result.GitWarning != nil {
		fmt.Fprintf(out, "%s version control setup failed: %v\n", tui.WarningStyle.Render("⚠"), result.GitWarning)
	}

	return nil
}
