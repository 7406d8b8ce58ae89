package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/MalithGihan/order-extractor/internal/logging"
)

// MaxUploadLimitMB caps MAX_UPLOAD_MB; uploads are buffered in memory.
const MaxUploadLimitMB = 4096

// Config holds the service settings. Fields are read from an optional YAML
// file (CONFIG_FILE) and then overridden by environment variables.
type Config struct {
	Port           string   `yaml:"port"`
	MockMode       bool     `yaml:"mock_mode"`
	MaxUploadMB    int      `yaml:"max_upload_mb"`
	AllowedOrigins []string `yaml:"cors_allowed_origins"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	PDFLineTables  bool     `yaml:"pdf_line_tables"`
}

func Default() Config {
	return Config{
		Port:           "8001",
		MaxUploadMB:    64,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:3001"},
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads .env (if present), the YAML file named by CONFIG_FILE (if set)
// and the environment, in that order of increasing precedence.
func Load() (Config, error) {
	_ = godotenv.Load()
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg.Port = getenv("PORT", cfg.Port)
	cfg.MockMode = getenvBool("MOCK_MODE", cfg.MockMode)
	cfg.PDFLineTables = getenvBool("PDF_LINE_TABLES", cfg.PDFLineTables)
	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getenv("LOG_FORMAT", cfg.LogFormat))
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("MAX_UPLOAD_MB: %w", err)
		}
		cfg.MaxUploadMB = n
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		errs = append(errs, fmt.Errorf("port %q is not a TCP port", c.Port))
	}
	if c.MaxUploadMB <= 0 || c.MaxUploadMB > MaxUploadLimitMB {
		errs = append(errs, fmt.Errorf("max upload must be between 1 and %d MB, got %d", MaxUploadLimitMB, c.MaxUploadMB))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// MaxUploadBytes is the largest accepted file, clamped to MaxUploadLimitMB.
func (c Config) MaxUploadBytes() int64 {
	return int64(min(max(c.MaxUploadMB, 0), MaxUploadLimitMB)) << 20
}

func (c Config) Addr() string { return ":" + c.Port }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
