package i18n

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prefbot/internal/domain"
)

type stubSource struct {
	tag   string
	err   error
	calls int
}

func (s *stubSource) SystemLocale(context.Context) (string, error) {
	s.calls++
	return s.tag, s.err
}

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"active.en.toml": {Data: []byte(`
"greet.hello" = "Hello, {name}!"
"greet.bye" = "Bye"
"only.english" = "English only"
"empty.in.korean" = "Not empty"
"repeat" = "{x} and {x}"
"chain" = "{a}-{b}"
`)},
		"active.ko.toml": {Data: []byte(`
"greet.hello" = "안녕하세요, {name}님!"
"greet.bye" = "안녕히 가세요"
"empty.in.korean" = ""
`)},
		"active.fr.toml": {Data: []byte(`
"greet.hello" = "Bonjour, {name} !"
`)},
		"README.md": {Data: []byte("not a message file")},
	}
}

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load(fixtureFS(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return c
}

func TestSession_DefaultsToEnglish(t *testing.T) {
	t.Parallel()
	s := fixtureCatalog(t).NewSession()

	assert.Equal(t, "en", s.Locale())
	assert.Equal(t, "en-US", s.DateLocale())
	assert.Equal(t, "Bye", s.T("greet.bye", nil))
}

func TestSession_T_FallbackChain(t *testing.T) {
	t.Parallel()
	s := fixtureCatalog(t).NewSession()
	s.SetLocale("ko")
	require.Equal(t, "ko", s.Locale())

	assert.Equal(t, "안녕히 가세요", s.T("greet.bye", nil))
	assert.Equal(t, "English only", s.T("only.english", nil), "key absent from ko falls back to en")
	assert.Equal(t, "Not empty", s.T("empty.in.korean", nil), "empty message counts as absent")
	assert.Equal(t, "no.such.key", s.T("no.such.key", nil), "key absent everywhere is returned verbatim")
	assert.Equal(t, "", s.T("", nil))
}

func TestSession_T_FallsBackAfterInit(t *testing.T) {
	t.Parallel()
	s := fixtureCatalog(t).NewSession()
	s.Init(context.Background(), "", &stubSource{tag: "ko-KR"})
	require.Equal(t, "ko", s.Locale())

	assert.Equal(t, "안녕하세요, Sam님!", s.T("greet.hello", map[string]any{"name": "Sam"}))
	assert.Equal(t, "English only", s.T("only.english", nil))
	assert.Equal(t, "Not empty", s.T("empty.in.korean", nil))
}

func TestSession_T_BracesAreNotTemplates(t *testing.T) {
	t.Parallel()
	c, err := Load(fstest.MapFS{
		"active.en.toml": {Data: []byte(`
"tpl" = "A {{x}} B"
"unclosed" = "{{ oops {name}"
"dot" = "{{.Name}}"
`)},
		"active.ko.toml": {Data: []byte(`
"dot" = "점 {{.Name}}"
`)},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	s := c.NewSession()
	assert.Equal(t, "A {{x}} B", s.T("tpl", nil))
	assert.Equal(t, "{{ oops Sam", s.T("unclosed", map[string]any{"name": "Sam"}))
	assert.Equal(t, "{{.Name}}", s.T("dot", map[string]any{"Name": "x"}))

	s.SetLocale("ko")
	assert.Equal(t, "점 {{.Name}}", s.T("dot", nil))
	assert.Equal(t, "A {{x}} B", s.T("tpl", nil), "fallback text is verbatim too")
}

func TestSession_T_Params(t *testing.T) {
	t.Parallel()
	s := fixtureCatalog(t).NewSession()

	assert.Equal(t, "Hello, Sam!", s.T("greet.hello", map[string]any{"name": "Sam"}))
	assert.Equal(t, "7 and 7", s.T("repeat", map[string]any{"x": 7}))
	assert.Equal(t, "Hello, {name}!", s.T("greet.hello", map[string]any{"other": "x"}))
	assert.Equal(t, "{b}-x", s.T("chain", map[string]any{"a": "{b}", "b": "x"}), "replacements are not rescanned")
	assert.Equal(t, "missing Sam", s.T("missing {name}", map[string]any{"name": "Sam"}), "params apply to the raw key too")

	s.SetLocale("fr")
	assert.Equal(t, "Bonjour, Sam !", s.T("greet.hello", map[string]any{"name": "Sam"}))
}

func TestSession_SetLocale_UnknownIsNoop(t *testing.T) {
	t.Parallel()
	s := fixtureCatalog(t).NewSession()
	s.SetLocale("fr")

	s.SetLocale("xx")
	assert.Equal(t, "fr", s.Locale())

	s.SetLocale("")
	assert.Equal(t, "fr", s.Locale())
}

func TestSession_DateLocale(t *testing.T) {
	t.Parallel()
	c, err := LoadDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	want := map[string]string{
		"en": "en-US", "ko": "ko-KR", "ja": "ja-JP",
		"zh-CN": "en-US", "zh-TW": "en-US", "fr": "en-US", "de": "en-US",
	}
	for code, tag := range want {
		s := c.NewSession()
		s.SetLocale(code)
		assert.Equal(t, tag, s.DateLocale(), code)
	}
	assert.Equal(t, "en-US", DateLocale("pt"))
}

func TestSession_Init_SavedLocaleSkipsSource(t *testing.T) {
	t.Parallel()
	s := fixtureCatalog(t).NewSession()
	src := &stubSource{tag: "ko-KR"}

	s.Init(context.Background(), "fr", src)

	assert.Equal(t, "fr", s.Locale())
	assert.Zero(t, src.calls)
}

func TestSession_Init_InvalidSavedLocaleUsesSource(t *testing.T) {
	t.Parallel()
	s := fixtureCatalog(t).NewSession()
	src := &stubSource{tag: "ko_KR.UTF-8"}

	s.Init(context.Background(), "xx", src)

	assert.Equal(t, "ko", s.Locale())
	assert.Equal(t, 1, src.calls)
}

func TestSession_Init_SystemLocale(t *testing.T) {
	t.Parallel()
	c, err := LoadDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	tests := []struct {
		tag  string
		want string
	}{
		{"zh-Hant-TW", "zh-TW"},
		{"zh-TW", "zh-TW"},
		{"zh_TW", "zh-TW"},
		{"zh-Hant-HK", "zh-TW"},
		{"zh-Hans-CN", "zh-CN"},
		{"zh", "zh-CN"},
		{"ja-JP", "ja"},
		{"de_DE", "de"},
		{"fr", "fr"},
		{"pt-BR", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			s := c.NewSession()
			s.Init(context.Background(), "", &stubSource{tag: tt.tag})
			assert.Equal(t, tt.want, s.Locale())
		})
	}
}

func TestSession_Init_SourceFailureIsLoggedAndSwallowed(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c, err := Load(fixtureFS(), slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, err)

	s := c.NewSession()
	s.SetLocale("ko")
	s.Init(context.Background(), "", &stubSource{err: errors.New("boom")})

	assert.Equal(t, "ko", s.Locale())
	assert.Contains(t, buf.String(), "failed to detect system locale")
	assert.Contains(t, buf.String(), "boom")
}

func TestSession_Init_NoSystemLocaleIsQuiet(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c, err := Load(fixtureFS(), slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, err)

	s := c.NewSession()
	s.SetLocale("fr")
	s.Init(context.Background(), "", &stubSource{err: domain.ErrLocaleUnavailable})

	assert.Equal(t, "fr", s.Locale())
	assert.NotContains(t, buf.String(), "level=ERROR")
}

func TestSession_Init_NilSource(t *testing.T) {
	t.Parallel()
	s := fixtureCatalog(t).NewSession()
	s.Init(context.Background(), "", nil)
	assert.Equal(t, "en", s.Locale())
}

func TestSessionsAreIndependent(t *testing.T) {
	t.Parallel()
	c := fixtureCatalog(t)
	a, b := c.NewSession(), c.NewSession()

	a.SetLocale("ko")
	assert.Equal(t, "ko", a.Locale())
	assert.Equal(t, "en", b.Locale())
}

func TestNormalizeSystemLocale(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "zh-TW", NormalizeSystemLocale("zh-Hant"))
	assert.Equal(t, "zh-CN", NormalizeSystemLocale("zh_CN"))
	assert.Equal(t, "en", NormalizeSystemLocale("en_US.UTF-8"))
	assert.Equal(t, "pt", NormalizeSystemLocale("pt-BR"))
	assert.Equal(t, "", NormalizeSystemLocale(""))
}
