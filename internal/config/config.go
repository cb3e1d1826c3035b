package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
)

type Config struct {
	Targets       []string           `yaml:"targets"`
	Monitoring    MonitoringConfig   `yaml:"monitoring"`
	Notifications NotificationConfig `yaml:"notifications"`
	Server        ServerConfig       `yaml:"server"`
}

type MonitoringConfig struct {
	Interval       string `yaml:"interval"`         // e.g. "3m"
	FailThreshold  int    `yaml:"fail_threshold"`   // consecutive fails before DOWN
	HTTPTimeout    string `yaml:"http_timeout"`     // e.g. "5s"
	PingAttempts   int    `yaml:"ping_attempts"`
	PingRetryDelay string `yaml:"ping_retry_delay"` // e.g. "500ms"
	Workers        int    `yaml:"workers"`
	UserAgent      string `yaml:"user_agent"`

	// Parsed durations (filled after load)
	IntervalDur       time.Duration `yaml:"-"`
	HTTPTimeoutDur    time.Duration `yaml:"-"`
	PingRetryDelayDur time.Duration `yaml:"-"`
}

type NotificationConfig struct {
	Desktop        *bool `yaml:"desktop,omitempty"`          // default true
	TelegramChatID int64 `yaml:"telegram_chat_id,omitempty"` // token comes from the environment
}

// DesktopEnabled defaults to true when unset.
func (n NotificationConfig) DesktopEnabled() bool {
	return n.Desktop == nil || *n.Desktop
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default is the built-in fallback used whenever the config file is missing
// or unreadable.
func Default() *Config {
	cfg := &Config{
		Targets: []string{"google.com", "1.1.1.1"},
	}
	applyDefaults(cfg)
	return cfg
}

// DefaultPath places the config under the platform per-user config dir.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".pingwatch.yaml"
	}
	return filepath.Join(base, "pingwatch", "config.yaml")
}

// Store reads and writes the configuration file. Load never fails the
// caller; Save is only used by the editor surface, not the monitoring core.
type Store struct {
	path   string
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string { return s.path }

// Load returns the on-disk configuration, falling back to Default() on a
// missing or corrupt file. Individual bad settings are replaced with their
// defaults and logged rather than rejected, so the monitor loop always gets
// something usable.
func (s *Store) Load() *Config {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read config, using defaults",
				zap.String("path", s.path), zap.Error(err))
		}
		return Default()
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		s.logger.Warn("parse config, using defaults",
			zap.String("path", s.path), zap.Error(err))
		return Default()
	}

	applyDefaults(&cfg)
	s.normalize(&cfg)
	return &cfg
}

// Save rewrites the target list, keeping whatever settings are on disk.
func (s *Store) Save(targets []string) error {
	cfg := s.Load()
	cfg.Targets = targets

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	m := &cfg.Monitoring
	if strings.TrimSpace(m.Interval) == "" {
		m.Interval = "3m"
	}
	if m.FailThreshold <= 0 {
		m.FailThreshold = 2
	}
	if strings.TrimSpace(m.HTTPTimeout) == "" {
		m.HTTPTimeout = "5s"
	}
	if m.PingAttempts <= 0 {
		m.PingAttempts = 3
	}
	if strings.TrimSpace(m.PingRetryDelay) == "" {
		m.PingRetryDelay = "500ms"
	}
	if m.Workers <= 0 {
		m.Workers = 4
	}
	if strings.TrimSpace(m.UserAgent) == "" {
		m.UserAgent = "Pingwatch/0.1"
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = "127.0.0.1:8743"
	}

	m.IntervalDur = 3 * time.Minute
	m.HTTPTimeoutDur = 5 * time.Second
	m.PingRetryDelayDur = 500 * time.Millisecond
}

// normalize parses the duration strings, keeping the defaults (and logging)
// when a value does not parse.
func (s *Store) normalize(cfg *Config) {
	m := &cfg.Monitoring
	m.IntervalDur = s.parseDuration("monitoring.interval", m.Interval, m.IntervalDur)
	m.HTTPTimeoutDur = s.parseDuration("monitoring.http_timeout", m.HTTPTimeout, m.HTTPTimeoutDur)
	m.PingRetryDelayDur = s.parseDuration("monitoring.ping_retry_delay", m.PingRetryDelay, m.PingRetryDelayDur)
}

func (s *Store) parseDuration(field, raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		s.logger.Warn("invalid duration, using default",
			zap.String("field", field), zap.String("value", raw),
			zap.Duration("default", fallback))
		return fallback
	}
	return d
}
