// Package i18n is a translation-resolution engine: it loads translation
// catalogs from YAML/JSON sources, resolves dotted keys through a locale
// fallback chain, selects plural forms by count, interpolates %{name}
// placeholders, and formats timestamps with catalog-defined layouts.
//
// The Translator is an explicit service instance rather than package-level
// state: construct it once at process start and pass it to every consumer.
// Catalogs are built lazily on first access (exactly once, no matter how many
// goroutines race for it) and rebuilt on Reload with an atomic swap, so
// steady-state lookups are lock-free.
//
// # Basic Usage
//
//	t, err := i18n.New(
//		i18n.WithDefaultLocale("en"),
//		i18n.WithSources(i18n.Dir("./translations")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	msg := t.T(ctx, "welcome.title")
//	greeting := t.T(ctx, "welcome.greeting", i18n.M{"name": "Ada"})
//
// # Catalog Format
//
// Sources hold documents rooted at locale keys. Nested mappings become dotted
// key paths; a mapping whose values are all strings and whose keys include a
// plural category (zero, one, two, few, many, other) becomes a plural entry:
//
//	en:
//	  welcome:
//	    title: "Welcome!"
//	    greeting: "Hello, %{name}!"
//	  users:
//	    count:
//	      zero: "No users"
//	      one: "1 user"
//	      other: "%{count} users"
//
// Several sources merge key-for-key in configuration order, later sources
// winning. That makes override files cheap: ship defaults, drop a second
// source on top for a tenant or an environment.
//
// # Locale Scoping
//
// The current locale travels with the context, never through shared mutable
// state. An HTTP locale detector typically resolves the header once and sets
// the locale for the rest of the request:
//
//	locale := t.MatchLocale(r.Header.Get("Accept-Language"))
//	ctx := i18n.SetLocale(r.Context(), locale)
//
// For a scoped override with guaranteed restoration, use WithLocale:
//
//	err := i18n.WithLocale(ctx, "es", func(ctx context.Context) error {
//		subject = t.T(ctx, "email.subject")
//		return nil
//	})
//
// # Resolution Order
//
// A key is looked up in the requested locale, then the configured fallback
// locale, then the default locale. There is no partial matching: "en-US"
// never implies "en" unless "en" is explicitly the fallback or the default.
//
// A key found nowhere goes through the missing-key chain: the per-call
// fallback of Td, then the configured handler, then a marker string
// ("[missing: key]" by default). Translate and TranslateN return
// ErrKeyNotFound instead for callers that must not render markers.
//
// # Pluralization
//
//	t.N(ctx, "users.count", 0)  // "No users"
//	t.N(ctx, "users.count", 1)  // "1 user"
//	t.N(ctx, "users.count", 5)  // "5 users"
//
// The default rule maps 0 to "zero", 1 to "one", and everything else to
// "other"; absent categories fall back to "other". Language-specific rules
// (Slavic, Romance, Arabic, ...) are available through PluralRuleForLocale
// and installed per locale with WithPluralRule.
//
// # Timestamps
//
//	t.Localize(ctx, time.Now(), "date.long")
//
// The format name resolves through the catalogs like any other key, so each
// locale can define its own Go time layout. Unresolvable names fall back to a
// built-in layout table and finally to RFC 3339; Localize never fails.
package i18n
