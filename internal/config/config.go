// Package config loads service settings from defaults, an optional YAML
// file and the environment, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when CONFIG_FILE is unset. A missing file is not an error.
const DefaultPath = "config.yaml"

type Config struct {
	Server    Server    `yaml:"server"`
	CORS      CORS      `yaml:"cors"`
	Log       Log       `yaml:"log"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Server struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	// MaxAge is the preflight cache lifetime in seconds.
	MaxAge int `yaml:"max_age"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Telemetry struct {
	// Enabled turns on OTLP export of traces, metrics and logs.
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: Server{
			Addr:              ":8000",
			ReadHeaderTimeout: 5 * time.Second,
			RequestTimeout:    30 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		CORS: CORS{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			MaxAge:         300,
		},
		Log: Log{
			Level: "info",
		},
		Telemetry: Telemetry{
			Enabled:     false,
			ServiceName: "cgpa-calculator-api",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if it
// exists) and environment variables, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Path returns CONFIG_FILE or DefaultPath.
func Path() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return DefaultPath
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("HTTP_ADDR"); ok {
		cfg.Server.Addr = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"READ_HEADER_TIMEOUT", &cfg.Server.ReadHeaderTimeout},
		{"REQUEST_TIMEOUT", &cfg.Server.RequestTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		v, ok := os.LookupEnv(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		cfg.CORS.AllowedOrigins = splitCSV(v)
	}
	if v, ok := os.LookupEnv("CORS_MAX_AGE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CORS_MAX_AGE: %w", err)
		}
		cfg.CORS.MaxAge = n
	}

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}

	if v, ok := os.LookupEnv("TELEMETRY_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TELEMETRY_ENABLED: %w", err)
		}
		cfg.Telemetry.Enabled = b
	}
	if v, ok := os.LookupEnv("OTEL_SERVICE_NAME"); ok && v != "" {
		cfg.Telemetry.ServiceName = v
	}

	return nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks that the configuration can start a server.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server address is required")
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return errors.New("read header timeout must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.CORS.MaxAge < 0 {
		return errors.New("cors max age cannot be negative")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	if c.Telemetry.ServiceName == "" {
		return errors.New("telemetry service name is required")
	}

	return nil
}
