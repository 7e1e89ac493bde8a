// Package locale implements the three-language fallback rule used across
// every localized entity: prefer the value in the active language, fall back
// to the locale-neutral base value when the translation is missing.
package locale

// Lang is one of the storefront languages.
type Lang string

const (
	Uz Lang = "uz"
	Ru Lang = "ru"
	En Lang = "en"
)

// Default is the primary storefront language.
const Default = Uz

// Parse normalizes a raw language string. Unknown values map to the default.
func Parse(s string) Lang {
	switch s {
	case "uz":
		return Uz
	case "ru":
		return Ru
	case "en":
		return En
	default:
		return Default
	}
}

// Pick resolves a localized field: the language-specific value when present,
// otherwise the base value. The result is never empty as long as base is set.
func Pick(lang Lang, base, uz, ru, en string) string {
	var v string
	switch lang {
	case Uz:
		v = uz
	case Ru:
		v = ru
	case En:
		v = en
	}
	if v == "" {
		return base
	}
	return v
}

// PickPtr is Pick over nullable columns; nil counts as missing.
func PickPtr(lang Lang, base, uz, ru, en *string) string {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return Pick(lang, deref(base), deref(uz), deref(ru), deref(en))
}
