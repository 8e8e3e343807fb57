package i18n

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseDocument decodes one translation document, picking the codec by file
// extension. Documents are rooted at locale keys:
//
//	en:
//	  welcome:
//	    title: "Welcome!"
//
// Returns nil, nil for extensions the engine does not recognize.
func parseDocument(name string, data []byte) (map[string]map[string]any, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return parseLocaleTree(yaml.Unmarshal, data)
	case ".json":
		return parseLocaleTree(json.Unmarshal, data)
	default:
		return nil, nil
	}
}

// parseLocaleTree decodes a document and validates that every top-level value
// is a mapping. A scalar at the locale level means the document is malformed.
func parseLocaleTree(unmarshal func([]byte, any) error, data []byte) (map[string]map[string]any, error) {
	var raw map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	out := make(map[string]map[string]any, len(raw))
	for locale, value := range raw {
		tree, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q: expected a mapping, got %T", ErrInvalidSource, locale, value)
		}
		out[locale] = tree
	}
	return out, nil
}

// mergeTrees folds src into dst locale by locale, deep-merging nested
// namespaces so that two files contributing to the same locale combine
// instead of replacing each other's subtrees.
func mergeTrees(dst map[string]map[string]any, src map[string]map[string]any) {
	for locale, tree := range src {
		existing, ok := dst[locale]
		if !ok {
			existing = make(map[string]any, len(tree))
			dst[locale] = existing
		}
		deepMerge(existing, tree)
	}
}

func deepMerge(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				deepMerge(dstMap, srcMap)
				continue
			}
		}
		dst[key] = value
	}
}
