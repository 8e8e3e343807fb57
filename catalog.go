package i18n

import "fmt"

// EntryKind discriminates the two shapes a catalog entry can take.
type EntryKind uint8

const (
	// KindScalar marks an entry holding a single translated string.
	KindScalar EntryKind = iota
	// KindPlural marks an entry holding one string per plural category.
	KindPlural
)

// Entry is a single flattened translation. Its shape is decided once during
// flattening and never re-inspected at lookup time.
type Entry struct {
	// Text holds the translation when Kind is KindScalar.
	Text string
	// Forms maps plural categories to texts when Kind is KindPlural.
	Forms map[string]string
	// Kind tells which of the two fields above is populated.
	Kind EntryKind
}

// Catalog maps dotted key paths to entries for a single locale. Catalogs are
// immutable once built; a reload produces a fresh set and swaps it in whole.
type Catalog map[string]Entry

// flattenTree walks a nested translation tree depth-first and writes flattened
// entries into dst. Existing keys are overwritten, so flattening several trees
// into the same catalog gives last-writer-wins at key granularity.
func flattenTree(dst Catalog, tree map[string]any, prefix string) {
	for key, value := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			dst[path] = Entry{Kind: KindScalar, Text: v}
		case map[string]any:
			if forms, ok := pluralLeaf(v); ok {
				dst[path] = Entry{Kind: KindPlural, Forms: forms}
				continue
			}
			flattenTree(dst, v, path)
		default:
			dst[path] = Entry{Kind: KindScalar, Text: fmt.Sprintf("%v", v)}
		}
	}
}

// pluralLeaf reports whether node is a pluralization leaf: every immediate
// child is a scalar string and at least one key is a recognized plural
// category. Anything else is a namespace to descend into, never coerced.
func pluralLeaf(node map[string]any) (map[string]string, bool) {
	if len(node) == 0 {
		return nil, false
	}

	forms := make(map[string]string, len(node))
	hasCategory := false
	for key, value := range node {
		text, ok := value.(string)
		if !ok {
			return nil, false
		}
		if isPluralCategory(key) {
			hasCategory = true
		}
		forms[key] = text
	}

	if !hasCategory {
		return nil, false
	}
	return forms, true
}
