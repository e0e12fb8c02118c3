// Package export writes the site as static files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/mgarciagodoy/portfolio/internal/rendering"
	"github.com/mgarciagodoy/portfolio/internal/storage"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
	"github.com/mgarciagodoy/portfolio/web/src/templates/layouts"
	"github.com/mgarciagodoy/portfolio/web/src/templates/pages"
)

// Options configures an export.
type Options struct {
	OutDir  string
	Content content.PageContent
	Theme   components.Theme
	// Assets, when set, is copied below <OutDir>/static.
	Assets fs.FS
}

// Result lists the files written by an export.
type Result struct {
	Files []string
	Bytes int64
}

// Exporter renders pages and writes them to a storage.Store.
type Exporter struct {
	store    storage.Store
	renderer rendering.Renderer
}

// New creates an Exporter.
func New(store storage.Store, renderer rendering.Renderer) *Exporter {
	return &Exporter{store: store, renderer: renderer}
}

// Export writes about/index.html and, when configured, the static assets.
func (e *Exporter) Export(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{}

	document := layouts.Base(opts.Content.Metadata, opts.Theme, "",
		pages.About(opts.Content, opts.Theme))
	html, err := e.renderer.RenderComponent(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("failed to render about page: %w", err)
	}
	if err := e.save(ctx, res, path.Join(opts.OutDir, "about", "index.html"), html); err != nil {
		return nil, err
	}

	if opts.Assets != nil {
		if err := e.copyAssets(ctx, res, opts); err != nil {
			return nil, err
		}
	}

	slog.Info("Exported site", "out", opts.OutDir, "files", len(res.Files), "bytes", res.Bytes)
	return res, nil
}

func (e *Exporter) copyAssets(ctx context.Context, res *Result, opts Options) error {
	return fs.WalkDir(opts.Assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(opts.Assets, p)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", p, err)
		}
		return e.save(ctx, res, path.Join(opts.OutDir, "static", p), data)
	})
}

func (e *Exporter) save(ctx context.Context, res *Result, p string, data []byte) error {
	n, err := e.store.Save(ctx, p, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	res.Files = append(res.Files, p)
	res.Bytes += n
	return nil
}
