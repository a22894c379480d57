package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hedisam/cachedactor/internal/logging"
	"github.com/hedisam/cachedactor/internal/mailbox"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Runtime RuntimeConfig `toml:"runtime"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
	Demo    DemoConfig    `toml:"demo"`
}

type RuntimeConfig struct {
	// Mailbox is "ring" or "mpsc".
	Mailbox         string `toml:"mailbox"`
	MailboxCapacity uint64 `toml:"mailbox_capacity"`
	// LookupTimeout bounds a registry round trip, e.g. "2s".
	LookupTimeout string `toml:"lookup_timeout"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	NoColor   bool   `toml:"no_color"`
	Timestamp *bool  `toml:"timestamp"`
}

type MetricsConfig struct {
	// Addr serves /metrics when set.
	Addr string `toml:"addr"`
}

type DemoConfig struct {
	Service string `toml:"service"`
	Clients int    `toml:"clients"`
	Rounds  int    `toml:"rounds"`
}

const (
	defaultLookupTimeout = "2s"
	defaultService       = "counter"
	defaultClients       = 3
	defaultRounds        = 5
)

func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

// Load reads a TOML file, fills in defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed: %w", err)
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Runtime.Mailbox == "" {
		cfg.Runtime.Mailbox = string(mailbox.Ring)
	}
	if cfg.Runtime.MailboxCapacity == 0 {
		cfg.Runtime.MailboxCapacity = mailbox.DefaultCapacity
	}
	if cfg.Runtime.LookupTimeout == "" {
		cfg.Runtime.LookupTimeout = defaultLookupTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Demo.Service == "" {
		cfg.Demo.Service = defaultService
	}
	if cfg.Demo.Clients == 0 {
		cfg.Demo.Clients = defaultClients
	}
	if cfg.Demo.Rounds == 0 {
		cfg.Demo.Rounds = defaultRounds
	}
}

func Validate(cfg Config) error {
	switch mailbox.Kind(cfg.Runtime.Mailbox) {
	case mailbox.Ring, mailbox.MPSC:
	default:
		return fmt.Errorf("runtime.mailbox: unknown kind %q", cfg.Runtime.Mailbox)
	}
	d, err := time.ParseDuration(cfg.Runtime.LookupTimeout)
	if err != nil {
		return fmt.Errorf("runtime.lookup_timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("runtime.lookup_timeout: must be positive, got %s", d)
	}
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	if strings.TrimSpace(cfg.Demo.Service) == "" {
		return fmt.Errorf("demo.service: must not be blank")
	}
	if cfg.Demo.Clients < 0 || cfg.Demo.Rounds < 0 {
		return fmt.Errorf("demo: clients and rounds must not be negative")
	}
	return nil
}

// LookupTimeout returns the parsed runtime.lookup_timeout. Call it on a validated config.
func (c Config) LookupTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Runtime.LookupTimeout)
	return d
}
