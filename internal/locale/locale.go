// Package locale holds the message catalogs and the regional date and digit
// formatting used by the form and the gallery.
package locale

import (
	"fmt"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.Persian, language.English}

var matcher = language.NewMatcher(supported)

// Localizer resolves message keys and formats numbers and dates for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New parses a BCP 47 tag and picks the closest supported locale.
func New(raw string) (*Localizer, error) {
	if strings.TrimSpace(raw) == "" {
		raw = "fa"
	}
	requested, err := language.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", raw, err)
	}
	_, idx, _ := matcher.Match(requested)
	return forTag(supported[idx]), nil
}

// MustNew is New for static locale names.
func MustNew(raw string) *Localizer {
	l, err := New(raw)
	if err != nil {
		panic(err)
	}
	return l
}

func forTag(tag language.Tag) *Localizer {
	return &Localizer{tag: tag, printer: message.NewPrinter(tag, message.Catalog(messages))}
}

// Tag returns the resolved locale.
func (l *Localizer) Tag() language.Tag { return l.tag }

// RTL reports whether the locale reads right to left.
func (l *Localizer) RTL() bool { return l.tag == language.Persian }

// T returns the message for key. Unknown keys print as themselves.
func (l *Localizer) T(key string) string {
	return l.printer.Sprintf(key)
}

// Tf formats the message for key with locale-aware number rendering.
func (l *Localizer) Tf(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Number renders an integer in the locale's numbering system.
func (l *Localizer) Number(n int) string {
	return l.printer.Sprint(n)
}

// FormatDate renders a day in the locale's calendar without changing zones.
func (l *Localizer) FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if l.RTL() {
		pt := ptime.New(t)
		return ShapeDigits(pt.Format("yyyy/M/d"))
	}
	return t.Format("Jan 2, 2006")
}

// ShapeDigits swaps ASCII digits for Extended Arabic-Indic (Persian) digits.
func ShapeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '۰' + (r - '0')
		}
		return r
	}, s)
}
