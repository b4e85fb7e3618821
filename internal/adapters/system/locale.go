// Package system adapts the operating system to the application ports.
package system

import (
	"context"
	"fmt"
	"strings"

	golocale "github.com/jeandeaual/go-locale"

	"prefbot/internal/domain"
	"prefbot/internal/ports/output"
)

// detectSystemLocale is swapped in tests.
var detectSystemLocale = golocale.GetLocale

var _ output.LocaleSource = OSLocale{}

// OSLocale reports the user locale configured on this machine
// (LANGUAGE/LC_ALL/LC_MESSAGES/LANG on Unix, the user default locale on
// Windows, the preferred language on macOS).
type OSLocale struct{}

type localeResult struct {
	tag string
	err error
}

// SystemLocale queries the OS on a separate goroutine so a stuck lookup cannot
// outlive ctx.
func (OSLocale) SystemLocale(ctx context.Context) (string, error) {
	detect := detectSystemLocale
	done := make(chan localeResult, 1)
	go func() {
		tag, err := detect()
		done <- localeResult{tag: strings.TrimSpace(tag), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("system locale: %w", r.err)
		}
		if r.tag == "" {
			return "", domain.ErrLocaleUnavailable
		}
		return r.tag, nil
	}
}
