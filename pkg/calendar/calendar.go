// Package calendar renders Unix instants as locale-flavoured date-time text,
// in the spirit of strftime's %c.
//
// Locales are BCP 47 tags ("es-ES", "zh-Hant-TW") or POSIX names
// ("en_US.UTF-8", "de_DE@euro"). Field order follows the locale's region or
// language: month first for the United States, year first for Chinese,
// Japanese, Korean, Hungarian and Lithuanian, day first elsewhere.
package calendar

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when neither the caller nor the environment names one.
const DefaultLocale = "en-US"

// posixLayout is what the C and POSIX locales print for %c.
const posixLayout = "Mon Jan _2 15:04:05 2006"

// getenv is replaced in tests.
var getenv = os.Getenv

// HostLocale returns the locale named by LC_ALL, LC_TIME or LANG, in that
// order, or [DefaultLocale].
func HostLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return DefaultLocale
}

// Format renders instant in the local time zone. It returns "" when the
// locale cannot be understood. An empty locale selects [HostLocale].
func Format(instant int64, locale string) string {
	return FormatIn(instant, locale, time.Local)
}

// FormatIn is like [Format] but renders in loc.
func FormatIn(instant int64, locale string, loc *time.Location) string {
	layout, ok := Layout(locale)
	if !ok {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(instant, 0).In(loc).Format(layout)
}

// Layout returns the time layout used for locale, and false when the locale
// cannot be parsed.
func Layout(locale string) (string, bool) {
	if locale == "" {
		locale = HostLocale()
	}
	name := posixName(locale)
	if name == "C" || name == "POSIX" {
		return posixLayout, true
	}
	tag, err := language.Parse(name)
	if err != nil || tag == language.Und {
		return "", false
	}
	return layoutFor(tag), true
}

// posixName strips a POSIX codeset and modifier and converts underscores, so
// "de_DE.UTF-8@euro" becomes "de-DE".
func posixName(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

type order int

const (
	dayFirst order = iota
	monthFirst
	yearFirst
)

var (
	yearFirstLanguages = map[string]bool{
		"zh": true, "ja": true, "ko": true, "hu": true, "lt": true,
	}
	dotSeparated = map[string]bool{
		"de": true, "ru": true, "pl": true, "cs": true, "sk": true, "fi": true,
		"nb": true, "da": true, "tr": true, "uk": true, "ro": true, "hu": true,
		"ko": true,
	}
	dashSeparated = map[string]bool{"nl": true, "lt": true}
)

func layoutFor(tag language.Tag) string {
	base, _ := tag.Base()
	region, _ := tag.Region()
	lang := base.String()

	sep := "/"
	switch {
	case dotSeparated[lang]:
		sep = "."
	case dashSeparated[lang]:
		sep = "-"
	}

	var date string
	switch fieldOrder(lang, region.String()) {
	case monthFirst:
		date = "01" + sep + "02" + sep + "2006"
	case yearFirst:
		date = "2006" + sep + "01" + sep + "02"
	default:
		date = "02" + sep + "01" + sep + "2006"
	}

	if region.String() == "US" {
		return "Mon " + date + " 03:04:05 PM"
	}
	return date + " 15:04:05"
}

func fieldOrder(lang, region string) order {
	switch {
	case region == "US":
		return monthFirst
	case yearFirstLanguages[lang]:
		return yearFirst
	default:
		return dayFirst
	}
}
