package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Source supplies one nested translation tree keyed by locale. Sources are
// consulted in configuration order; entries from later sources override
// earlier ones key-for-key within the same locale.
//
// Load may return both a partial tree and an error: the engine logs the error,
// keeps the partial contribution, and continues. A bad file never aborts the
// whole build.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// Map returns a Source backed by an in-memory tree. Useful for tests and for
// translations assembled at runtime.
func Map(data map[string]map[string]any) Source {
	return mapSource{data: data}
}

type mapSource struct {
	data map[string]map[string]any
}

func (s mapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s.data == nil {
		return map[string]map[string]any{}, nil
	}
	return s.data, nil
}

// Dir returns a Source that reads every .yaml, .yml, and .json file under an
// OS directory. A directory that does not exist contributes nothing and is
// not an error.
func Dir(path string) Source {
	return dirSource{path: path}
}

type dirSource struct {
	path string
}

func (s dirSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", s.path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidSource, s.path)
	}
	return loadFS(ctx, os.DirFS(s.path))
}

// FS returns a Source that reads every .yaml, .yml, and .json file from an
// fs.FS, which makes embedded catalogs work:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	sub, _ := fs.Sub(translationsFS, "translations")
//	t, _ := i18n.New(i18n.WithSources(i18n.FS(sub)))
func FS(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	return loadFS(ctx, s.fsys)
}

// loadFS walks the filesystem in lexical order and merges every recognized
// document into one tree. Per-file failures are collected, not fatal, so one
// malformed document cannot poison the other locales.
func loadFS(ctx context.Context, fsys fs.FS) (map[string]map[string]any, error) {
	merged := make(map[string]map[string]any)
	var errs []error

	walkErr := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading %q: %w", filePath, err))
			return nil
		}

		tree, err := parseDocument(filePath, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("parsing %q: %w", filePath, err))
			return nil
		}
		if tree == nil {
			// Unrecognized extension.
			return nil
		}

		mergeTrees(merged, tree)
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	return merged, errors.Join(errs...)
}
