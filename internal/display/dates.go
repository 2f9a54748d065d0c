package display

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale matches the landing page audience.
const DefaultLocale = "pl-PL"

type dateStyle struct {
	months [12]string
	layout func(day int, month string, year int) string
}

var (
	supportedLocales = []language.Tag{
		language.Polish,
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
	}

	dateStyles = []dateStyle{
		{
			// genitive month names, as in "29 marca 2024"
			months: [12]string{"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
				"lipca", "sierpnia", "września", "października", "listopada", "grudnia"},
			layout: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
		},
		{
			months: englishMonths,
			layout: func(d int, m string, y int) string { return fmt.Sprintf("%s %d, %d", m, d, y) },
		},
		{
			months: englishMonths,
			layout: func(d int, m string, y int) string { return fmt.Sprintf("%d %s %d", d, m, y) },
		},
		{
			months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
				"Juli", "August", "September", "Oktober", "November", "Dezember"},
			layout: func(d int, m string, y int) string { return fmt.Sprintf("%d. %s %d", d, m, y) },
		},
	}

	englishMonths = [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}

	localeMatcher = language.NewMatcher(supportedLocales)
)

// DateFormatter renders long-form dates (day, full month name, year) for a locale.
type DateFormatter struct {
	style dateStyle
}

// NewDateFormatter picks the closest supported locale to the given BCP 47
// tag. Unparseable tags fall back to DefaultLocale.
func NewDateFormatter(locale string) *DateFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	_, idx, _ := localeMatcher.Match(tag)
	return &DateFormatter{style: dateStyles[idx]}
}

// Format renders t in the formatter's locale. The zero time renders as "".
func (f *DateFormatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return f.style.layout(t.Day(), f.style.months[t.Month()-1], t.Year())
}
