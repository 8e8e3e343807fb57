package i18n

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// M carries named interpolation parameters.
type M map[string]any

// Matches named placeholders in the form %{name}.
var placeholderRegex = regexp.MustCompile(`%\{([^{}]+)\}`)

// replacePlaceholders substitutes %{name} tokens in the template with values
// from params. Tokens without a matching parameter are left verbatim in the
// output; that is deliberate, not an error.
func replacePlaceholders(template string, params M) string {
	if len(params) == 0 || !strings.Contains(template, "%{") {
		return template
	}

	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := params[name]; ok {
			return fmt.Sprint(value)
		}
		return match
	})
}

// unmatchedPlaceholders returns the %{name} tokens still present in text.
func unmatchedPlaceholders(text string) []string {
	if !strings.Contains(text, "%{") {
		return nil
	}
	return placeholderRegex.FindAllString(text, -1)
}

func mergeParams(params []M) M {
	merged := make(M)
	for _, p := range params {
		maps.Copy(merged, p)
	}
	return merged
}
