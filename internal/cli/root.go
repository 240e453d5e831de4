package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raivivek/makebio/internal/filesystem"
	"github.com/raivivek/makebio/internal/git"
	"github.com/raivivek/makebio/internal/github"
	"github.com/raivivek/makebio/internal/logging"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, gitClient git.Client, ghClient github.Client) *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "makebio",
		Short: "Scaffold and maintain research project directories",
		Long: `Quickly set up research projects split across two storage tiers.

Code, notebooks and control metadata live in the home-directory tree;
bulk intermediate data lives on scratch storage and is linked in via the
work/ and data/ symlinks, so the fragmented layout appears in one place.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
		},
	}

	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "Verbosity level (0-2)")
	rootCmd.PersistentFlags().StringP("directory", "C", "", "Operate on this directory instead of the working directory")

	// Add subcommands
	rootCmd.AddCommand(NewInitCommand(fs, gitClient))
	rootCmd.AddCommand(NewAddAnalysisCommand(fs))
	rootCmd.AddCommand(NewAddDataCommand(fs))
	rootCmd.AddCommand(NewRenameAnalysisCommand(fs))
	rootCmd.AddCommand(NewFreezeCommand(fs))
	rootCmd.AddCommand(NewSaveCommand(fs, gitClient))
	rootCmd.AddCommand(NewUpdateCommand(fs, gitClient))
	rootCmd.AddCommand(NewShowCommand(fs, gitClient))
	rootCmd.AddCommand(NewPublishCommand(fs, gitClient, ghClient))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	gitClient := git.NewOSClient()

	// Left nil when no token is configured; only publish needs it.
	var ghClient github.Client
	if client, err := github.NewClientFromEnv(); err == nil {
		ghClient = client
	}

	rootCmd := NewRootCommand(fs, gitClient, ghClient)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
