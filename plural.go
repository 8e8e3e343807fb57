package i18n

import "strings"

// PluralRule selects a plural category for a given count.
type PluralRule func(n int) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func isPluralCategory(key string) bool {
	switch key {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return true
	}
	return false
}

// DefaultPluralRule is the rule used when no per-locale rule is configured:
// 0 selects "zero", 1 selects "one", everything else selects "other".
// Missing categories fall back through to "other" during selection.
var DefaultPluralRule PluralRule = func(n int) string {
	switch n {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	default:
		return PluralOther
	}
}

// EnglishPluralRule implements plural rules for English and similar languages.
// Categories: zero (0), one (1, -1), other (everything else)
var EnglishPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// SlavicPluralRule implements plural rules for Slavic languages
// (Polish, Czech, Ukrainian, Croatian, Serbian, etc.)
// Categories: zero, one, few, many
var SlavicPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}

	absN := n
	if n < 0 {
		absN = -n
	}

	mod10 := absN % 10
	mod100 := absN % 100

	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}

	return PluralMany
}

// RomancePluralRule implements plural rules for Romance languages
// (French, Italian, Portuguese, but NOT Spanish which is simpler)
// Categories: one (0, 1), many (1,000,000+), other
var RomancePluralRule PluralRule = func(n int) string {
	if n == 0 || n == 1 || n == -1 {
		return PluralOne
	}
	absN := n
	if n < 0 {
		absN = -n
	}
	if absN >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// SpanishPluralRule implements plural rules for Spanish.
// Simpler than other Romance languages.
// Categories: one (1), many (1,000,000+), other
var SpanishPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	absN := n
	if n < 0 {
		absN = -n
	}
	if absN >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// GermanicPluralRule implements plural rules for Germanic languages
// (German, Dutch, Swedish, Norwegian, Danish)
// Categories: one (1), other (everything else including 0)
var GermanicPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// AsianPluralRule implements plural rules for Asian languages
// that don't distinguish plural forms
// (Japanese, Chinese, Korean, Thai, Vietnamese)
// Categories: other (all numbers)
var AsianPluralRule PluralRule = func(_ int) string {
	return PluralOther
}

// ArabicPluralRule implements complex plural rules for Arabic.
// Categories: zero, one, two, few, many, other
var ArabicPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}
	if n == 2 || n == -2 {
		return PluralTwo
	}

	absN := n
	if n < 0 {
		absN = -n
	}

	mod100 := absN % 100

	if mod100 >= 3 && mod100 <= 10 {
		return PluralFew
	}

	if mod100 >= 11 && mod100 <= 99 {
		return PluralMany
	}

	return PluralOther
}

// PluralRuleForLocale returns a language-specific plural rule for a locale,
// keyed by its two-letter ISO 639-1 prefix (e.g. "en", "pl", "ru").
// Falls back to DefaultPluralRule for unknown languages. Rules returned here
// are opt-in: pass them to WithPluralRule to override the default.
func PluralRuleForLocale(locale string) PluralRule {
	if len(locale) >= 2 {
		locale = strings.ToLower(locale[:2])
	}

	switch locale {
	case "en":
		return EnglishPluralRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicPluralRule
	case "fr", "it", "pt":
		return RomancePluralRule
	case "es":
		return SpanishPluralRule
	case "de", "nl", "sv", "no", "da", "is":
		return GermanicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	case "ar":
		return ArabicPluralRule
	default:
		return DefaultPluralRule
	}
}

// selectForm picks the text for a count from a plural form map. The rule
// chooses the category; absent categories fall back through related ones,
// ending at "other".
func selectForm(forms map[string]string, rule PluralRule, n int) (string, bool) {
	category := rule(n)
	if text, ok := forms[category]; ok {
		return text, true
	}
	for _, fallback := range pluralFallbacks(category) {
		if text, ok := forms[fallback]; ok {
			return text, true
		}
	}
	return "", false
}

func pluralFallbacks(category string) []string {
	switch category {
	case PluralZero, PluralOne, PluralMany:
		return []string{PluralOther}
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	case PluralOther:
		return nil
	default:
		return []string{PluralOther}
	}
}
