package i18n

import (
	"context"
	"time"
)

// DefaultFormat is the format name Localize uses when none is given.
const DefaultFormat = "date.default"

// defaultLayouts covers the common format names when the catalogs do not
// define them. Values are Go time layouts, the same representation format
// entries in catalogs use.
var defaultLayouts = map[string]string{
	"date.default":   "2006-01-02",
	"date.short":     "Jan 02",
	"date.long":      "January 02, 2006",
	"time.short":     "15:04",
	"time.long":      "15:04:05 MST",
	"datetime.short": "02 Jan 2006 15:04",
	"datetime.long":  "January 02, 2006 15:04:05",
}

// Localize renders a timestamp using a named format. The format name is
// resolved through the same fallback chain as ordinary translation keys, so
// locales can carry their own layouts (as Go time layouts, e.g.
// "date.long: 02.01.2006" for German). When the name resolves to nothing the
// default layout table is consulted, and an unrecognized name falls back to
// RFC 3339. This path never fails.
func (t *Translator) Localize(ctx context.Context, tm time.Time, format string) string {
	if format == "" {
		format = DefaultFormat
	}

	if entry, _, ok := t.lookup(ctx, format); ok && entry.Kind == KindScalar && entry.Text != "" {
		return tm.Format(entry.Text)
	}

	if layout, ok := defaultLayouts[format]; ok {
		return tm.Format(layout)
	}

	return tm.Format(time.RFC3339)
}
