package content

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads page content from a YAML file. Fields missing from the file keep
// the values of About(), so a file only needs to list what it overrides.
func Load(fsys afero.Fs, path string) (PageContent, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PageContent{}, fmt.Errorf("%w: %s", ErrContentNotFound, path)
		}
		return PageContent{}, fmt.Errorf("failed to read content file %s: %w", path, err)
	}

	c := About()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return PageContent{}, fmt.Errorf("%w: %s: %v", ErrInvalidContent, path, err)
	}
	return c, nil
}
