// Command localecheck shows how this machine's locale resolves against the
// message catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"prefbot/internal/adapters/system"
	"prefbot/internal/config"
	"prefbot/internal/domain/theme"
	"prefbot/internal/infrastructure/i18n"
	"prefbot/internal/infrastructure/logging"
	"prefbot/internal/ports/output"
)

// params collects repeated -param name=value flags.
type params map[string]any

func (p params) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (p params) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	p[name] = value
	return nil
}

func main() {
	saved := flag.String("saved", "", "locale code as if previously saved by the user")
	key := flag.String("key", "greet.hello", "message key to translate")
	values := params{}
	flag.Var(values, "param", "placeholder value as name=value (repeatable)")
	recent := flag.Int("logs", 0, "print the last N lines of LOG_FILE and exit")
	flag.Parse()

	cfg, err := config.LoadLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *recent > 0 {
		if err := printRecent(os.Stdout, cfg.LogFile, *recent); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewWithWriter(os.Stderr, level, cfg.LogColored)

	catalog, err := i18n.LoadDefault(logger)
	if err != nil {
		logger.Error("catalog failed to load", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	l := catalog.NewLocalizer()
	l.Init(ctx, *saved, system.OSLocale{})

	report(os.Stdout, l, *key, values)
}

func report(w io.Writer, l output.Localizer, key string, values params) {
	fmt.Fprintf(w, "locale:      %s\n", l.Locale())
	fmt.Fprintf(w, "date locale: %s\n", l.DateLocale())
	fmt.Fprintf(w, "%s: %s\n", key, l.T(key, values))
	fmt.Fprintln(w, "themes:")
	for _, o := range theme.List() {
		fmt.Fprintf(w, "  %-7s %-12s %s\n", o.ID, l.T(o.LabelKey, nil), theme.Palette(o.ID).Primary)
	}
}

func printRecent(w io.Writer, path string, n int) error {
	if path == "" {
		return fmt.Errorf("LOG_FILE is not set")
	}
	lines, err := logging.ReadRecent(path, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
