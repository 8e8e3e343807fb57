package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en"

const defaultMissingFormat = "[missing: %s]"

// config is an immutable configuration snapshot. Configure builds a new one
// and swaps it in atomically, so in-flight lookups always see a consistent
// configuration.
type config struct {
	sources           []Source
	rules             map[string]PluralRule
	missingKeyHandler func(locale, key string) string
	logger            *slog.Logger
	locales           []string
	defaultLocale     string
	fallbackLocale    string
	missingFormat     string
	missingLog        bool
}

func defaultConfig() *config {
	return &config{
		rules:         make(map[string]PluralRule),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultLocale: DefaultLocale,
		missingFormat: defaultMissingFormat,
	}
}

func (c *config) clone() *config {
	clone := *c
	clone.sources = slices.Clone(c.sources)
	clone.rules = maps.Clone(c.rules)
	clone.locales = slices.Clone(c.locales)
	return &clone
}

// Translator owns the translation catalogs and resolves keys against them.
// It is an explicit service instance: construct it once at process start and
// pass it to every consumer. Catalogs are built lazily on first access and
// rebuilt on Reload; steady-state lookups are lock-free.
type Translator struct {
	catalogs atomic.Pointer[map[string]Catalog]
	cfg      atomic.Pointer[config]
	loaded   atomic.Bool
	mu       sync.Mutex
}

// New creates a Translator with the given options. Catalogs are not loaded
// here; the first translation call triggers the build.
func New(opts ...Option) (*Translator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if cfg.defaultLocale == "" {
		return nil, ErrEmptyLocale
	}

	t := &Translator{}
	t.cfg.Store(cfg)
	t.storeCatalogs(map[string]Catalog{})
	return t, nil
}

// Configure applies options on top of the current configuration and marks the
// catalogs stale, so the next access rebuilds them lazily.
func (t *Translator) Configure(opts ...Option) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cfg := t.cfg.Load().clone()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if cfg.defaultLocale == "" {
		return ErrEmptyLocale
	}

	t.cfg.Store(cfg)
	t.loaded.Store(false)
	return nil
}

// T resolves key for the context's locale and interpolates placeholders.
// Missing keys go through the missing-key chain: configured handler first,
// then the marker string. Use Td for an explicit per-call fallback or
// Translate when the caller needs the error.
func (t *Translator) T(ctx context.Context, key string, placeholders ...M) string {
	s, err := t.Translate(ctx, key, placeholders...)
	if err != nil {
		return t.missing(ctx, key)
	}
	return s
}

// Td resolves key like T but returns the given fallback text (with
// placeholders interpolated) when the key is not defined anywhere. The
// explicit fallback takes precedence over the whole missing-key chain.
func (t *Translator) Td(ctx context.Context, key, fallback string, placeholders ...M) string {
	s, err := t.Translate(ctx, key, placeholders...)
	if err != nil {
		return replacePlaceholders(fallback, mergeParams(placeholders))
	}
	return s
}

// N resolves key with a count: a plural entry selects the category for n,
// a scalar entry is used as-is. %{count} is injected after the category has
// been chosen, unless the caller supplied its own count parameter.
func (t *Translator) N(ctx context.Context, key string, n int, placeholders ...M) string {
	s, err := t.TranslateN(ctx, key, n, placeholders...)
	if err != nil {
		return t.missing(ctx, key)
	}
	return s
}

// Translate is the strict form of T: it returns ErrKeyNotFound instead of
// consulting the missing-key chain.
func (t *Translator) Translate(ctx context.Context, key string, placeholders ...M) (string, error) {
	entry, locale, ok := t.lookup(ctx, key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	if entry.Kind == KindPlural {
		// A plural entry addressed without a count is unresolvable.
		return "", fmt.Errorf("%w: %q requires a count in %q", ErrKeyNotFound, key, locale)
	}
	return t.interpolate(ctx, key, entry.Text, mergeParams(placeholders)), nil
}

// TranslateN is the strict form of N.
func (t *Translator) TranslateN(ctx context.Context, key string, n int, placeholders ...M) (string, error) {
	entry, locale, ok := t.lookup(ctx, key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	text := entry.Text
	if entry.Kind == KindPlural {
		form, ok := selectForm(entry.Forms, t.cfg.Load().ruleFor(locale), n)
		if !ok {
			return "", fmt.Errorf("%w: %q has no plural form for %d in %q", ErrKeyNotFound, key, n, locale)
		}
		text = form
	}

	params := mergeParams(placeholders)
	if _, ok := params["count"]; !ok {
		params["count"] = strconv.Itoa(n)
	}
	return t.interpolate(ctx, key, text, params), nil
}

// Has reports whether the key resolves to a defined entry through the
// fallback chain. No interpolation is performed.
func (t *Translator) Has(ctx context.Context, key string) bool {
	_, _, ok := t.lookup(ctx, key)
	return ok
}

// Locales returns the available locales: the configured list when one was
// given, otherwise the locales present in the loaded catalogs, default first.
func (t *Translator) Locales() []string {
	cfg := t.cfg.Load()
	if len(cfg.locales) > 0 {
		return slices.Clone(cfg.locales)
	}

	catalogs := t.ensureLoaded(context.Background())
	others := make([]string, 0, len(catalogs))
	for locale := range catalogs {
		if locale != cfg.defaultLocale {
			others = append(others, locale)
		}
	}
	sort.Strings(others)
	return append([]string{cfg.defaultLocale}, others...)
}

// DefaultLocale returns the configured default locale.
func (t *Translator) DefaultLocale() string {
	return t.cfg.Load().defaultLocale
}

// lookup resolves key through the fallback chain for the context's locale.
// It also returns the locale the lookup started from, which pluralization
// uses to pick the rule.
func (t *Translator) lookup(ctx context.Context, key string) (Entry, string, bool) {
	catalogs := t.ensureLoaded(ctx)
	locale := t.localeFrom(ctx)
	entry, ok := resolve(catalogs, key, t.cfg.Load().fallbackChain(locale))
	return entry, locale, ok
}

// localeFrom returns the context's locale, or the default when none is set.
func (t *Translator) localeFrom(ctx context.Context) string {
	if locale := GetLocale(ctx); locale != "" {
		return locale
	}
	return t.cfg.Load().defaultLocale
}

func (c *config) ruleFor(locale string) PluralRule {
	if rule, ok := c.rules[locale]; ok {
		return rule
	}
	return DefaultPluralRule
}

func (t *Translator) interpolate(ctx context.Context, key, text string, params M) string {
	result := replacePlaceholders(text, params)
	if cfg := t.cfg.Load(); cfg.missingLog {
		if leftover := unmatchedPlaceholders(result); len(leftover) > 0 {
			cfg.logger.DebugContext(ctx, "unmatched placeholders",
				slog.String("key", key),
				slog.Any("placeholders", leftover))
		}
	}
	return result
}

// missing applies the tail of the missing-key chain: handler, then marker.
func (t *Translator) missing(ctx context.Context, key string) string {
	cfg := t.cfg.Load()
	locale := t.localeFrom(ctx)
	if cfg.missingLog {
		cfg.logger.WarnContext(ctx, "translation missing",
			slog.String("locale", locale),
			slog.String("key", key))
	}
	if cfg.missingKeyHandler != nil {
		return cfg.missingKeyHandler(locale, key)
	}
	return fmt.Sprintf(cfg.missingFormat, key)
}
