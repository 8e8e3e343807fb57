package i18n

// fallbackChain returns the locales to consult in order: the requested
// locale, the configured fallback locale, then the default locale, with
// duplicates dropped. There is no partial matching: "en-US" does not imply
// "en" unless "en" is explicitly the fallback or default locale.
func (c *config) fallbackChain(locale string) []string {
	chain := make([]string, 0, 3)
	chain = append(chain, locale)
	if c.fallbackLocale != "" && c.fallbackLocale != locale {
		chain = append(chain, c.fallbackLocale)
	}
	if c.defaultLocale != locale && c.defaultLocale != c.fallbackLocale {
		chain = append(chain, c.defaultLocale)
	}
	return chain
}

// resolve walks the chain and returns the first defined entry.
func resolve(catalogs map[string]Catalog, key string, chain []string) (Entry, bool) {
	for _, locale := range chain {
		if catalog, ok := catalogs[locale]; ok {
			if entry, ok := catalog[key]; ok {
				return entry, true
			}
		}
	}
	return Entry{}, false
}
