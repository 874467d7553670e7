package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter reads every .yaml and .yml file in the root of a file system,
// such as an embed.FS. Trees for the same language across files are merged
// at the top level; later files win on conflicts.
type FSAdapter struct {
	FS fs.FS
}

func NewFSAdapter(fsys fs.FS) *FSAdapter {
	return &FSAdapter{FS: fsys}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.FS, ".")
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	out := make(map[string]map[string]any)
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := fs.ReadFile(a.FS, e.Name())
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", e.Name(), err))
		}
		parsed, err := ParseYAML(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		for lang, tree := range parsed {
			if out[lang] == nil {
				out[lang] = make(map[string]any, len(tree))
			}
			maps.Copy(out[lang], tree)
		}
	}
	return out, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
