package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultCopiedReset       = 2 * time.Second
	defaultLogLevel          = "info"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Seed     SeedConfig     `yaml:"seed"`
	Document DocumentConfig `yaml:"document"`
}

// ServerConfig は HTTP サーバーに関する設定です。
// TrustProxy が true の場合のみ X-Forwarded-For などのヘッダーをクライアントアドレスとして採用します。
type ServerConfig struct {
	ListenAddr           string          `yaml:"listen_addr"`
	ReadHeaderTimeout    time.Duration   `yaml:"-"`
	ShutdownTimeout      time.Duration   `yaml:"-"`
	ReadHeaderTimeoutRaw string          `yaml:"read_header_timeout"`
	ShutdownTimeoutRaw   string          `yaml:"shutdown_timeout"`
	RateLimit            RateLimitConfig `yaml:"rate_limit"`
	TrustProxy           bool            `yaml:"trust_proxy"`
}

// RateLimitConfig はフォーム送信に対するクライアント単位の流量制限です。PerSecond が 0 の場合は無効です。
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// Enabled は流量制限が有効かを返します。
func (r RateLimitConfig) Enabled() bool {
	return r.PerSecond > 0
}

// LogConfig はログ出力の設定です。
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// SeedConfig は初期データの設定です。Path が空の場合は組み込みのデータを使用します。
type SeedConfig struct {
	Path string `yaml:"path"`
}

// DocumentConfig は文書生成画面の設定です。
type DocumentConfig struct {
	CopiedReset    time.Duration `yaml:"-"`
	CopiedResetRaw string        `yaml:"copied_reset"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.Server.validateAndNormalize(); err != nil {
		return err
	}

	switch c.Log.Level {
	case "":
		c.Log.Level = defaultLogLevel
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is not supported", c.Log.Level)
	}

	reset, err := parseDurationAllowEmpty(c.Document.CopiedResetRaw)
	if err != nil {
		return fmt.Errorf("config: document.copied_reset: %w", err)
	}
	if reset == 0 {
		reset = defaultCopiedReset
	}
	c.Document.CopiedReset = reset

	return nil
}

func (s *ServerConfig) validateAndNormalize() error {
	if s.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	readHeader, err := parseDurationAllowEmpty(s.ReadHeaderTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: server.read_header_timeout: %w", err)
	}
	if readHeader == 0 {
		readHeader = defaultReadHeaderTimeout
	}
	s.ReadHeaderTimeout = readHeader

	shutdown, err := parseDurationAllowEmpty(s.ShutdownTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if shutdown == 0 {
		shutdown = defaultShutdownTimeout
	}
	s.ShutdownTimeout = shutdown

	if s.RateLimit.PerSecond < 0 {
		return fmt.Errorf("config: server.rate_limit.per_second must not be negative")
	}
	if s.RateLimit.Enabled() && s.RateLimit.Burst <= 0 {
		s.RateLimit.Burst = 1
	}

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}
