package app

import (
	"fmt"
	"log/slog"

	"github.com/mgarciagodoy/portfolio/internal/config"
	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/mgarciagodoy/portfolio/internal/rendering"
	"github.com/mgarciagodoy/portfolio/internal/server"
	"github.com/mgarciagodoy/portfolio/internal/storage"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// New builds the dependency container for the application. Services are
// created lazily on first use.
func New(cfg *config.Config, fs afero.Fs) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, fs)
	do.Provide(injector, provideContentStore)
	do.Provide(injector, provideWatcher)
	do.Provide(injector, func(do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(injector, func(i do.Injector) (*storage.AferoStore, error) {
		return storage.NewAferoStore(do.MustInvoke[afero.Fs](i)), nil
	})
	do.Provide(injector, provideServer)

	return injector
}

// LoadContent returns the built-in content, or the content of file when one
// is configured. Invalid files are rejected.
func LoadContent(fs afero.Fs, file string) (content.PageContent, error) {
	if file == "" {
		return content.About(), nil
	}
	c, err := content.Load(fs, file)
	if err != nil {
		return content.PageContent{}, err
	}
	if err := content.Validate(c); err != nil {
		return content.PageContent{}, err
	}
	return c, nil
}

func provideContentStore(i do.Injector) (*content.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	fs := do.MustInvoke[afero.Fs](i)

	c, err := LoadContent(fs, cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	slog.Debug("Loaded page content", "file", cfg.ContentFile, "links", len(c.Links))
	return content.NewStore(c), nil
}

// provideWatcher returns a nil watcher unless hot reload of a content file is enabled.
func provideWatcher(i do.Injector) (*content.Watcher, error) {
	cfg := do.MustInvoke[*config.Config](i)
	if cfg.ContentFile == "" || !cfg.ContentWatch {
		return nil, nil
	}
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return nil, err
	}
	return content.NewWatcher(do.MustInvoke[afero.Fs](i), cfg.ContentFile, store), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return nil, err
	}
	watcher, err := do.Invoke[*content.Watcher](i)
	if err != nil {
		return nil, err
	}
	return server.New(
		do.MustInvoke[*config.Config](i),
		store,
		watcher,
		do.MustInvoke[*rendering.UniversalRenderer](i),
	), nil
}
