package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"prefbot/internal/infrastructure/logging"
)

// Logging regroupe les réglages du logger, partagés par le bot et le CLI.
type Logging struct {
	LogLevel   string `env:"LOG_LEVEL"   envDefault:"info"`
	LogColored bool   `env:"LOG_COLORED" envDefault:"true"`
	// LogFile, s'il est défini, reçoit une copie des logs (sans couleurs).
	LogFile    string `env:"LOG_FILE"`
}

type Config struct {
	Logging

	Token          string `env:"TOKEN"`
	GuildID        string `env:"GUILD_ID"`
	DatabaseURL    string `env:"DATABASE_URL"    envDefault:"postgres://localhost:5432/prefbot?sslmode=disable"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadLogging ne charge que les réglages du logger (aucun token requis).
func LoadLogging() (*Logging, error) {
	loadDotEnv()

	cfg := &Logging{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}
}

// validate applique toutes les règles sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		return fmt.Errorf("config: MIGRATIONS_PATH ne peut pas être vide")
	}

	return c.Logging.validate()
}

func (l *Logging) validate() error {
	if _, err := logging.ParseLevel(l.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return nil
}
