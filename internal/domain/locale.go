package domain

import "strings"

// Locale is a two-letter language code.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleTurkish Locale = "tr"
	LocaleFrench  Locale = "fr"
	LocaleItalian Locale = "it"
	LocaleGerman  Locale = "de"
	LocaleArabic  Locale = "ar"
	LocaleHindi   Locale = "hi"

	// DefaultLocale is assumed for traces without a locale hint.
	DefaultLocale = LocaleEnglish
)

var localeNames = map[Locale]string{
	LocaleEnglish: "English",
	LocaleTurkish: "Turkish",
	LocaleFrench:  "French",
	LocaleItalian: "Italian",
	LocaleGerman:  "German",
	LocaleArabic:  "Arabic",
	LocaleHindi:   "Hindi",
}

// SupportedLocales returns every locale the application knows by name.
func SupportedLocales() []Locale {
	return []Locale{LocaleEnglish, LocaleTurkish, LocaleFrench, LocaleItalian, LocaleGerman, LocaleArabic, LocaleHindi}
}

// ParseLocale normalizes s ("TR", " tr ") into a Locale. Empty input returns "".
func ParseLocale(s string) Locale {
	return Locale(strings.ToLower(strings.TrimSpace(s)))
}

// DisplayName returns the English name of the language, or the code itself if unknown.
func (l Locale) DisplayName() string {
	if name, ok := localeNames[l]; ok {
		return name
	}
	return string(l)
}

func (l Locale) String() string { return string(l) }
