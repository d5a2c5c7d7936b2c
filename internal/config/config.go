package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Поддерживаемые хранилища записей.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// DefaultPort — порт сервера по умолчанию.
const DefaultPort = 3001

type Config struct {
	// Server-side settings
	Port        int    `env:"PORT"`
	StoreDriver string `env:"STORE_DRIVER"`

	// Client-side settings
	ServerURL     string `env:"SERVER_URL"`
	ClientLogFile string `env:"CLIENT_LOG"`

	// Shared settings
	Debug   bool `env:"DEBUG"`
	Version bool `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env становятся значениями флагов по умолчанию, флаг их перекрывает
	// Server flags
	flag.IntVar(&cfg.Port, "port", cfg.Port, "порт HTTP-сервера")
	flag.StringVar(&cfg.StoreDriver, "store", cfg.StoreDriver, "хранилище записей: memory | sqlite")
	// Client flags
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "server URL for the client, e.g. http://localhost:3001")
	flag.StringVar(&cfg.ClientLogFile, "client-log", cfg.ClientLogFile, "file for client diagnostics (empty = discard)")
	// Shared flags
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "development logger")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = DefaultPort
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if cfg.StoreDriver != StoreSQLite {
		cfg.StoreDriver = StoreMemory
	}
	cfg.ServerURL = strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/")
	if cfg.ServerURL == "" {
		cfg.ServerURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	return cfg
}

// Addr — адрес, который слушает сервер.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
