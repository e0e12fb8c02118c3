package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. All file access goes through fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio-cli",
		Short: "Portfolio site tool",
		Long: `portfolio-cli builds and checks the portfolio site.

Available commands:
  render      Export the About page as static HTML
  validate    Check a content file for problems
  version     Print the version

Use "portfolio-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newRenderCmd(fs),
		newValidateCmd(fs),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
