package widget

import (
	"strings"

	"golang.org/x/text/language"
)

// ParseLocale accepts BCP 47 tags ("ko-KR") as well as POSIX locale names
// ("ko_KR.UTF-8", "de_DE@euro"). The empty string, "C" and "POSIX" carry no
// language and report false.
func ParseLocale(raw string) (language.Tag, bool) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	switch strings.ToUpper(s) {
	case "", "C", "POSIX":
		return language.Und, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// ResolveLanguage reports LanguagePrimary when the base language of rawTag is
// exactly the base language of primary. Regions and scripts are ignored, so
// "ko-KR" and "ko" both select Korean when primary is "ko".
func ResolveLanguage(rawTag string, primary language.Tag) Language {
	tag, ok := ParseLocale(rawTag)
	if !ok {
		return LanguageFallback
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return LanguageFallback
	}
	want, _ := primary.Base()
	if base == want {
		return LanguagePrimary
	}
	return LanguageFallback
}
