package i18n_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18n"
)

func TestLocalize(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ts := time.Date(2026, time.March, 7, 14, 30, 45, 0, time.UTC)

	catalog := i18n.Map(map[string]map[string]any{
		"en": {
			"date": map[string]any{
				"long": "January 02, 2006",
			},
		},
		"de": {
			"date": map[string]any{
				"long": "02.01.2006",
			},
		},
	})

	newTr := func(t *testing.T, opts ...i18n.Option) *i18n.Translator {
		t.Helper()
		tr, err := i18n.New(append([]i18n.Option{
			i18n.WithDefaultLocale("en"),
			i18n.WithSources(catalog),
		}, opts...)...)
		require.NoError(t, err)
		return tr
	}

	t.Run("resolves layout from catalog", func(t *testing.T) {
		t.Parallel()
		tr := newTr(t)
		require.Equal(t, "March 07, 2026", tr.Localize(ctx, ts, "date.long"))
	})

	t.Run("per-locale layouts", func(t *testing.T) {
		t.Parallel()
		tr := newTr(t)
		deCtx := i18n.SetLocale(ctx, "de")
		require.Equal(t, "07.03.2026", tr.Localize(deCtx, ts, "date.long"))
	})

	t.Run("unresolved names use the default table", func(t *testing.T) {
		t.Parallel()
		tr := newTr(t)
		require.Equal(t, "2026-03-07", tr.Localize(ctx, ts, "date.default"))
		require.Equal(t, "Mar 07", tr.Localize(ctx, ts, "date.short"))
		require.Equal(t, "14:30", tr.Localize(ctx, ts, "time.short"))
		require.Equal(t, "07 Mar 2026 14:30", tr.Localize(ctx, ts, "datetime.short"))
	})

	t.Run("empty format means date.default", func(t *testing.T) {
		t.Parallel()
		tr := newTr(t)
		require.Equal(t, "2026-03-07", tr.Localize(ctx, ts, ""))
	})

	t.Run("unknown names fall back to RFC 3339", func(t *testing.T) {
		t.Parallel()
		tr := newTr(t)
		require.Equal(t, "2026-03-07T14:30:45Z", tr.Localize(ctx, ts, "no.such.format"))
	})

	t.Run("never fails even with no catalogs", func(t *testing.T) {
		t.Parallel()
		tr, err := i18n.New(i18n.WithDefaultLocale("en"))
		require.NoError(t, err)
		require.Equal(t, "2026-03-07", tr.Localize(ctx, ts, "date.default"))
		require.Equal(t, "2026-03-07T14:30:45Z", tr.Localize(ctx, ts, "surprise"))
	})
}
