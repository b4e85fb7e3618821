package i18n

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"prefbot/internal/domain"
	"prefbot/internal/ports/output"
)

// Ensure Session implements the output.Localizer port.
var _ output.Localizer = (*Session)(nil)

// Session carries the current locale of one caller. It is not safe for
// concurrent use; create one per interaction or per process.
type Session struct {
	catalog *Catalog
	current string
}

// NewSession returns a session in the default locale.
func (c *Catalog) NewSession() *Session {
	return &Session{catalog: c, current: DefaultLocale}
}

// T renders key in the current locale, then the default locale, then
// returns key itself. Each {name} placeholder is replaced by the matching
// param; replacements are not rescanned for placeholders.
func (s *Session) T(key string, params map[string]any) string {
	msg, ok := s.catalog.message(s.current, key)
	if !ok {
		msg = key
	}
	return substitute(msg, params)
}

// Locale returns the current locale code.
func (s *Session) Locale() string {
	return s.current
}

// DateLocale returns the date formatting tag of the current locale.
func (s *Session) DateLocale() string {
	return DateLocale(s.current)
}

// SetLocale switches to code when the catalog has it. Unknown codes are
// ignored.
func (s *Session) SetLocale(code string) {
	if s.catalog.Has(code) {
		s.current = code
	}
}

// Init adopts saved when the catalog has it. Otherwise it asks source for
// the system locale and adopts its catalog equivalent, if any. A source
// with nothing to report, or a failing one, leaves the locale unchanged.
func (s *Session) Init(ctx context.Context, saved string, source output.LocaleSource) {
	if saved != "" && s.catalog.Has(saved) {
		s.current = saved
		return
	}
	if source == nil {
		return
	}

	tag, err := source.SystemLocale(ctx)
	switch {
	case errors.Is(err, domain.ErrLocaleUnavailable):
		s.catalog.logger.Debug("i18n: no system locale reported", "locale", s.current)
		return
	case err != nil:
		s.catalog.logger.Error("i18n: failed to detect system locale", "error", err)
		return
	}
	if code := NormalizeSystemLocale(tag); code != "" {
		s.SetLocale(code)
	}
}

// NormalizeSystemLocale maps an OS or client locale tag onto a catalog code
// candidate: Chinese tags become zh-TW (Taiwan or Traditional script) or
// zh-CN, anything else is cut down to its primary language subtag.
func NormalizeSystemLocale(tag string) string {
	if tag == "" {
		return ""
	}
	if strings.HasPrefix(tag, "zh") {
		if strings.Contains(tag, "TW") || strings.Contains(tag, "Hant") {
			return "zh-TW"
		}
		return "zh-CN"
	}
	lang, _, _ := strings.Cut(tag, "-")
	lang, _, _ = strings.Cut(lang, "_")
	return lang
}

func substitute(msg string, params map[string]any) string {
	if len(params) == 0 {
		return msg
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(params)*2)
	for _, name := range names {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(params[name]))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
