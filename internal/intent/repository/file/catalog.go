package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"intent-chatbot/internal/intent"
	"intent-chatbot/internal/intent/repository"
)

// LoadCatalog reads and validates the catalog file.
func (r *implRepository) LoadCatalog(ctx context.Context) (intent.Catalog, error) {
	var decode func([]byte) (intent.Catalog, error)
	switch ext := strings.ToLower(filepath.Ext(r.path)); ext {
	case ".json":
		decode = DecodeJSON
	case ".yaml", ".yml":
		decode = DecodeYAML
	default:
		return intent.Catalog{}, fmt.Errorf("%w: %q", repository.ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		r.l.Errorf(ctx, "intent.repository.file.LoadCatalog ReadFile: %v", err)
		return intent.Catalog{}, fmt.Errorf("%w: %v", repository.ErrFailedToRead, err)
	}

	catalog, err := decode(data)
	if err != nil {
		return intent.Catalog{}, err
	}

	r.l.Infof(ctx, "intent.repository.file.LoadCatalog: loaded %d intents from %s", catalog.Len(), r.path)
	return catalog, nil
}
