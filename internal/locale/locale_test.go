package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Uz, Parse("uz"))
	assert.Equal(t, Ru, Parse("ru"))
	assert.Equal(t, En, Parse("en"))
	assert.Equal(t, Default, Parse(""))
	assert.Equal(t, Default, Parse("fr"))
}

func TestPick_PrefersActiveLanguage(t *testing.T) {
	assert.Equal(t, "olma", Pick(Uz, "base", "olma", "яблоко", "apple"))
	assert.Equal(t, "яблоко", Pick(Ru, "base", "olma", "яблоко", "apple"))
	assert.Equal(t, "apple", Pick(En, "base", "olma", "яблоко", "apple"))
}

// Pick must fall back to the base value and never return an empty string for
// any language when the base is set.
func TestPick_FallbackNeverEmpty(t *testing.T) {
	for _, lang := range []Lang{Uz, Ru, En} {
		got := Pick(lang, "base", "", "", "")
		assert.Equal(t, "base", got, "lang %s", lang)
	}
}

func TestPickPtr_NilCountsAsMissing(t *testing.T) {
	ru := "яблоко"
	base := "base"
	assert.Equal(t, "яблоко", PickPtr(Ru, &base, nil, &ru, nil))
	assert.Equal(t, "base", PickPtr(En, &base, nil, &ru, nil))
	assert.Equal(t, "", PickPtr(En, nil, nil, nil, nil))
}
