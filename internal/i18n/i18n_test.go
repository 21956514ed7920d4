package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewI18n_LocaleFromEnvironment(t *testing.T) {
	t.Setenv("WEBLATE_STATS_LANG", "")
	t.Setenv("LANG", "ja_JP.UTF-8")
	assert.Equal(t, LocaleJA, NewI18n().GetLocale())

	t.Setenv("LANG", "C.UTF-8")
	assert.Equal(t, LocaleEN, NewI18n().GetLocale())

	t.Setenv("WEBLATE_STATS_LANG", "en")
	t.Setenv("LANG", "ja_JP.UTF-8")
	assert.Equal(t, LocaleEN, NewI18n().GetLocale())
}

func TestT(t *testing.T) {
	i := NewI18n()

	i.SetLocale(LocaleEN)
	assert.Equal(t, "Error while reading uri https://x/api/", i.T("request_failed", "https://x/api/"))

	i.SetLocale(LocaleJA)
	assert.Equal(t, "ファイルが見つかりません: team.yaml", i.T("file_not_found", "team.yaml"))
}

func TestT_Fallbacks(t *testing.T) {
	i := NewI18n()

	// unknown locale falls back to English
	i.SetLocale(Locale("ko"))
	assert.Equal(t, "Suggestions", i.T("suggestions"))

	// unknown key is returned as is
	assert.Equal(t, "no_such_key", i.T("no_such_key"))
	assert.Equal(t, "no_such_key: [1]", i.T("no_such_key", 1))
}

func TestCataloguesHaveSameKeys(t *testing.T) {
	i := NewI18n()
	for key := range i.messages[LocaleEN] {
		_, ok := i.messages[LocaleJA][key]
		assert.True(t, ok, "missing ja message for %s", key)
	}
	for key := range i.messages[LocaleJA] {
		_, ok := i.messages[LocaleEN][key]
		assert.True(t, ok, "missing en message for %s", key)
	}
}
