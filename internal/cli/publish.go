package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/config"
	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/github"
	"github.com/raivivek/makebio/internal/project"
	"github.com/raivivek/makebio/internal/tui"
)

// PublishCommand handles the publish command
type PublishCommand struct {
	fs  filesystem.FileSystem
	git git.Client
	gh  github.Client
}

// NewPublishCommand creates a new publish command
func NewPublishCommand(fs filesystem.FileSystem, gitClient git.Client, gh github.Client) *cobra.Command {
	cmd := &PublishCommand{fs: fs, git: gitClient, gh: gh}

	cobraCmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the project to GitHub",
		Long: `Create a GitHub repository named after the project, add it as origin
and push the snapshot history. Requires GH_TOKEN or GITHUB_TOKEN.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("private", false, "Create the repository as private")

	return cobraCmd
}

// Run executes the publish command
func (c *PublishCommand) Run(cmd *cobra.Command, args []string) error {
	root, _, err := resolveProject(c.fs, cmd)
	if err != nil {
		return err
	}

	gh := c.gh
	if gh == nil {
		client, err := github.NewClientFromEnv()
		if err != nil {
			return err
		}
		gh = client
	}

	private, _ := cmd.Flags().GetBool("private")

	store := config.NewStore(c.fs)
	publisher := project.NewPublisher(c.fs, c.git.WithContext(cmd.Context()), gh, store)

	result, err := publisher.Publish(cmd.Context(), root, private)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Published %s at %s\n", tui.SuccessStyle.Render("✓"), result.Repo.FullName, shortHash(result.Commit))
	fmt.Fprintf(out, "  %s\n", tui.PathStyle.Render(result.Repo.HTMLURL))
	return nil
}
