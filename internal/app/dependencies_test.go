package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mgarciagodoy/portfolio/internal/config"
	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/mgarciagodoy/portfolio/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse()
	require.NoError(t, err)
	return cfg
}

func TestNew_BuildsServer(t *testing.T) {
	injector := New(testConfig(t), afero.NewMemMapFs())

	s, err := do.Invoke[*server.Server](injector)
	require.NoError(t, err)
	s.RegisterRoutes()

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content.About(), s.Content().Get())
}

func TestNew_ContentFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "about.yaml", []byte("heading: Custom\n"), 0o644))

	cfg := testConfig(t)
	cfg.ContentFile = "about.yaml"
	injector := New(cfg, fs)

	store, err := do.Invoke[*content.Store](injector)
	require.NoError(t, err)
	assert.Equal(t, "Custom", store.Get().Heading)

	watcher, err := do.Invoke[*content.Watcher](injector)
	require.NoError(t, err)
	assert.Nil(t, watcher, "watching is off unless CONTENT_WATCH is set")
}

func TestNew_WatcherEnabled(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "about.yaml", []byte("heading: Custom\n"), 0o644))

	cfg := testConfig(t)
	cfg.ContentFile = "about.yaml"
	cfg.ContentWatch = true

	watcher, err := do.Invoke[*content.Watcher](New(cfg, fs))
	require.NoError(t, err)
	assert.NotNil(t, watcher)
}

func TestNew_InvalidContentFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "about.yaml", []byte("links:\n  - href: nope\n    icon: mail\n    label: x\n"), 0o644))

	cfg := testConfig(t)
	cfg.ContentFile = "about.yaml"

	_, err := do.Invoke[*server.Server](New(cfg, fs))
	assert.ErrorContains(t, err, content.ErrInvalidContent.Error())
}

func TestLoadContent(t *testing.T) {
	c, err := LoadContent(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, content.About(), c)

	_, err = LoadContent(afero.NewMemMapFs(), "missing.yaml")
	assert.ErrorIs(t, err, content.ErrContentNotFound)
}
