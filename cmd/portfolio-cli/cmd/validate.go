package cmd

import (
	"fmt"

	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newValidateCmd(fsys afero.Fs) *cobra.Command {
	var contentFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check page content for problems",
		Long: `Validate page content: required fields and link destinations, which must be
absolute URLs, mailto: URIs or in-page anchors.

Examples:
  portfolio-cli validate                                # check the built-in content
  portfolio-cli validate --content content/about.yaml   # check a content file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := content.About()
			source := "built-in content"
			if contentFile != "" {
				var err error
				if c, err = content.Load(fsys, contentFile); err != nil {
					return err
				}
				source = contentFile
			}

			if err := content.Validate(c); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ %s: %v\n", source, err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid (%d links, %d language facts)\n", source, len(c.Links), len(c.Languages))
			return nil
		},
	}

	cmd.Flags().StringVarP(&contentFile, "content", "c", "", "YAML content file (default: built-in content)")
	return cmd
}
