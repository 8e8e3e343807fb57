package i18n

import (
	"log/slog"
	"sort"
	"strings"
)

// Option configures a Translator during construction or via Configure.
type Option func(*config) error

// WithSources appends translation sources in resolution order. Later sources
// override earlier ones key-for-key within the same locale.
func WithSources(sources ...Source) Option {
	return func(c *config) error {
		for _, src := range sources {
			if src == nil {
				return ErrNilSource
			}
		}
		c.sources = append(c.sources, sources...)
		return nil
	}
}

// WithDefaultLocale sets the locale used when the context carries none, and
// the last step of the fallback chain.
func WithDefaultLocale(locale string) Option {
	return func(c *config) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		c.defaultLocale = locale
		return nil
	}
}

// WithFallbackLocale sets the locale consulted between the requested locale
// and the default locale. No fallback locale is configured by default.
func WithFallbackLocale(locale string) Option {
	return func(c *config) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		c.fallbackLocale = locale
		return nil
	}
}

// WithLocales declares the available locales. The default locale is always
// included and placed first; the rest are sorted alphabetically. Set the
// default locale before this option. When unset, Locales reports the locales
// discovered in the loaded catalogs instead.
func WithLocales(locales ...string) Option {
	return func(c *config) error {
		set := make(map[string]bool, len(locales))
		for _, locale := range locales {
			if locale != "" {
				set[locale] = true
			}
		}
		delete(set, c.defaultLocale)

		others := make([]string, 0, len(set))
		for locale := range set {
			others = append(others, locale)
		}
		sort.Strings(others)

		c.locales = append([]string{c.defaultLocale}, others...)
		return nil
	}
}

// WithPluralRule overrides the plural rule for a locale. Without an override
// every locale uses DefaultPluralRule.
func WithPluralRule(locale string, rule PluralRule) Option {
	return func(c *config) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		c.rules[locale] = rule
		return nil
	}
}

// WithMissingKeyHandler sets a handler whose return value is used whenever a
// key resolves to nothing. It takes precedence over the marker string but not
// over an explicit per-call fallback (Td).
func WithMissingKeyHandler(handler func(locale, key string) string) Option {
	return func(c *config) error {
		c.missingKeyHandler = handler
		return nil
	}
}

// WithMissingKeyFormat sets the marker template used for missing keys. The
// template must contain a %s verb for the key. Default: "[missing: %s]".
func WithMissingKeyFormat(format string) Option {
	return func(c *config) error {
		if !strings.Contains(format, "%s") {
			return ErrInvalidMissingFormat
		}
		c.missingFormat = format
		return nil
	}
}

// WithMissingLogging controls whether missing translations and leftover
// placeholders are logged. Default is false to avoid noisy logs.
func WithMissingLogging(enabled bool) Option {
	return func(c *config) error {
		c.missingLog = enabled
		return nil
	}
}

// WithLogger provides a logger for source failures and, when enabled, missing
// translations. A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}
