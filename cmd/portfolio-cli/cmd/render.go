package cmd

import (
	"fmt"
	"io/fs"

	"github.com/mgarciagodoy/portfolio/internal/app"
	"github.com/mgarciagodoy/portfolio/internal/export"
	"github.com/mgarciagodoy/portfolio/internal/rendering"
	"github.com/mgarciagodoy/portfolio/internal/storage"
	"github.com/mgarciagodoy/portfolio/web"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRenderCmd(fsys afero.Fs) *cobra.Command {
	var (
		outDir      string
		contentFile string
		themeName   string
		withAssets  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the About page as static HTML",
		Long: `Render the About page and write it to <out>/about/index.html.

Examples:
  portfolio-cli render                                  # built-in content into ./public
  portfolio-cli render --out dist --theme dark          # dark theme into ./dist
  portfolio-cli render --content content/about.yaml     # content from a YAML file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, ok := components.ParseTheme(themeName)
			if !ok {
				return fmt.Errorf("unknown theme %q (want light or dark)", themeName)
			}

			pageContent, err := app.LoadContent(fsys, contentFile)
			if err != nil {
				return err
			}

			opts := export.Options{
				OutDir:  outDir,
				Content: pageContent,
				Theme:   theme,
			}
			if withAssets {
				assets, err := fs.Sub(web.FS, "static")
				if err != nil {
					return err
				}
				opts.Assets = assets
			}

			exporter := export.New(storage.NewAferoStore(fsys), rendering.NewUniversalRenderer())
			res, err := exporter.Export(cmd.Context(), opts)
			if err != nil {
				return err
			}

			for _, f := range res.Files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "public", "output directory")
	cmd.Flags().StringVarP(&contentFile, "content", "c", "", "YAML content file (default: built-in content)")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "light", "theme: light or dark")
	cmd.Flags().BoolVar(&withAssets, "assets", true, "copy static assets next to the page")
	return cmd
}
