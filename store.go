package i18n

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// ensureLoaded returns the current catalog set, building it first if needed.
// The fast path is a single atomic flag read; the build itself runs under the
// lock with a re-check, so unbounded concurrent first callers trigger exactly
// one load. Steady-state readers never take the lock.
func (t *Translator) ensureLoaded(ctx context.Context) map[string]Catalog {
	if t.loaded.Load() {
		return *t.catalogs.Load()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loaded.Load() {
		return *t.catalogs.Load()
	}

	built, err := t.build(ctx)
	if err != nil {
		// The caller's context died mid-build. Leave the stale flag unset so
		// the next caller retries, and serve whatever was published before.
		return *t.catalogs.Load()
	}

	t.storeCatalogs(built)
	t.loaded.Store(true)
	return built
}

// Reload rebuilds the catalogs from the configured sources and atomically
// swaps them in. Concurrent readers see either the fully-old or the fully-new
// set, never a partially populated one.
func (t *Translator) Reload(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	built, err := t.build(ctx)
	if err != nil {
		return err
	}

	t.storeCatalogs(built)
	t.loaded.Store(true)
	return nil
}

// Reset clears all state including the configuration. Test utility.
func (t *Translator) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cfg.Store(defaultConfig())
	t.storeCatalogs(map[string]Catalog{})
	t.loaded.Store(false)
}

// build loads every source and flattens the trees into per-locale catalogs.
// Sources load concurrently; merging runs in configuration order afterwards
// so the last-writer-wins override order stays deterministic. A failing
// source is logged and contributes whatever it managed to load. The only
// error returned is context cancellation.
func (t *Translator) build(ctx context.Context) (map[string]Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := t.cfg.Load()

	trees := make([]map[string]map[string]any, len(cfg.sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range cfg.sources {
		i, src := i, src
		g.Go(func() error {
			tree, err := src.Load(gctx)
			trees[i] = tree
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				cfg.logger.WarnContext(ctx, "translation source failed, partial contribution kept",
					slog.Any("error", err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalogs := make(map[string]Catalog)
	for _, tree := range trees {
		for locale, nested := range tree {
			catalog, ok := catalogs[locale]
			if !ok {
				catalog = make(Catalog)
				catalogs[locale] = catalog
			}
			flattenTree(catalog, nested, "")
		}
	}
	return catalogs, nil
}

func (t *Translator) storeCatalogs(catalogs map[string]Catalog) {
	t.catalogs.Store(&catalogs)
}
