package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"prefbot/internal/domain/entities"
	"prefbot/internal/ports/output"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

const (
	// DefaultLocale is the fallback dictionary and the initial session locale.
	DefaultLocale = "en"

	defaultDateLocale = "en-US"
	filePrefix        = "active."
	fileSuffix        = ".toml"
)

// ErrMissingDefaultLocale is returned by Load when no active.en.toml exists.
var ErrMissingDefaultLocale = errors.New("i18n: catalog has no default locale messages")

// supportedLocales feeds the language picker. Keep it in sync with the
// files under locales/; Drift reports any mismatch.
var supportedLocales = []entities.Locale{
	{Code: "en", Name: "English"},
	{Code: "ko", Name: "한국어"},
	{Code: "ja", Name: "日本語"},
	{Code: "zh-CN", Name: "简体中文"},
	{Code: "zh-TW", Name: "繁體中文"},
	{Code: "fr", Name: "Français"},
	{Code: "de", Name: "Deutsch"},
}

// dateLocales covers the locales with their own date layout; the rest
// format dates as en-US.
var dateLocales = map[string]string{
	"en": "en-US",
	"ko": "ko-KR",
	"ja": "ja-JP",
}

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

// Catalog is the immutable set of message dictionaries, backed by a go-i18n
// bundle. It is safe for concurrent use; per-caller state lives in Session.
type Catalog struct {
	bundle *i18n.Bundle
	keys   map[string]map[string]struct{}
	logger *slog.Logger
}

// LoadDefault loads the dictionaries embedded in the binary.
func LoadDefault(logger *slog.Logger) (*Catalog, error) {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: embedded locales: %w", err)
	}
	return Load(sub, logger)
}

// Load reads every active.<code>.toml at the root of fsys. The file name
// decides the locale code.
func Load(fsys fs.FS, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files, err := fs.Glob(fsys, filePrefix+"*"+fileSuffix)
	if err != nil {
		return nil, fmt.Errorf("i18n: list message files: %w", err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	c := &Catalog{
		bundle: bundle,
		keys:   make(map[string]map[string]struct{}, len(files)),
		logger: logger,
	}
	for _, file := range files {
		code := strings.TrimSuffix(strings.TrimPrefix(file, filePrefix), fileSuffix)

		buf, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", file, err)
		}
		var messages map[string]string
		if err := toml.Unmarshal(buf, &messages); err != nil {
			return nil, fmt.Errorf("i18n: decode %s: %w", file, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}

		set := make(map[string]struct{}, len(messages))
		for key, text := range messages {
			// go-i18n drops empty messages, so they count as missing.
			if text != "" {
				set[key] = struct{}{}
			}
		}
		c.keys[code] = set
		logger.Debug("i18n: message file loaded", "locale", code, "messages", len(set))
	}

	if _, ok := c.keys[DefaultLocale]; !ok {
		return nil, ErrMissingDefaultLocale
	}
	return c, nil
}

// Has reports whether code has a dictionary in the catalog.
func (c *Catalog) Has(code string) bool {
	_, ok := c.keys[code]
	return ok
}

// Codes returns the catalog locale codes, sorted.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.keys))
	for code := range c.keys {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SupportedLocales returns the language picker entries in display order.
func (c *Catalog) SupportedLocales() []entities.Locale {
	out := make([]entities.Locale, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// NewLocalizer satisfies output.Catalog.
func (c *Catalog) NewLocalizer() output.Localizer {
	return c.NewSession()
}

// DateLocale maps a catalog code to its region-qualified date formatting tag.
func DateLocale(code string) string {
	if tag, ok := dateLocales[code]; ok {
		return tag
	}
	return defaultDateLocale
}

// MissingKeys lists the keys of the default dictionary that code lacks.
func (c *Catalog) MissingKeys(code string) []string {
	have := c.keys[code]
	var missing []string
	for key := range c.keys[DefaultLocale] {
		if _, ok := have[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// Drift compares the picker list with the loaded dictionaries. unloaded holds
// listed codes without a dictionary, unlisted holds dictionaries nobody can pick.
func (c *Catalog) Drift() (unloaded, unlisted []string) {
	listed := make(map[string]struct{}, len(supportedLocales))
	for _, l := range supportedLocales {
		listed[l.Code] = struct{}{}
		if !c.Has(l.Code) {
			unloaded = append(unloaded, l.Code)
		}
	}
	for _, code := range c.Codes() {
		if _, ok := listed[code]; !ok {
			unlisted = append(unlisted, code)
		}
	}
	return unloaded, unlisted
}

// Audit logs coverage gaps. It never fails: incomplete dictionaries fall
// back to the default locale at lookup time.
func (c *Catalog) Audit() {
	unloaded, unlisted := c.Drift()
	if len(unloaded) > 0 {
		c.logger.Warn("i18n: supported locales without messages", "locales", unloaded)
	}
	if len(unlisted) > 0 {
		c.logger.Warn("i18n: message files missing from the language picker", "locales", unlisted)
	}
	for _, code := range c.Codes() {
		if missing := c.MissingKeys(code); len(missing) > 0 {
			c.logger.Warn("i18n: untranslated messages", "locale", code, "count", len(missing), "keys", missing)
		}
	}
}

// message resolves key for code, then for DefaultLocale. Messages come back
// verbatim; placeholders are filled by the session.
func (c *Catalog) message(code, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	if !c.Has(code) {
		code = DefaultLocale
	}
	if msg, ok := c.localize(code, key); ok {
		return msg, true
	}
	if code == DefaultLocale {
		return "", false
	}
	return c.localize(DefaultLocale, key)
}

// localize looks key up in the dictionary of code only. go-i18n's own
// fallback is not used: it reports the fallback text together with a
// MessageNotFoundErr.
func (c *Catalog) localize(code, key string) (string, bool) {
	localizer := i18n.NewLocalizer(c.bundle, code)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      key,
		TemplateParser: template.IdentityParser{},
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			c.logger.Warn("i18n: localize failed", "key", key, "locale", code, "error", err)
		}
		return "", false
	}
	return msg, msg != ""
}
