package i18n

import "context"

// localeContextKey is the key for storing the current locale in a context.
type localeContextKey struct{}

// SetLocale returns a derived context carrying the given locale. Translation
// methods read it back with GetLocale, so the override travels with the
// context through the call chain instead of living in shared mutable state.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale carried by the context, or an empty string if
// none is set.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}

// WithLocale runs fn with the locale set on a derived context. The override
// ends when fn returns on any path, including a panic, because the derived
// context never escapes the call: the caller's context is untouched, and
// concurrent goroutines cannot observe each other's override.
func WithLocale(ctx context.Context, locale string, fn func(ctx context.Context) error) error {
	return fn(SetLocale(ctx, locale))
}
