package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
)

// Config for the study front-end server.
//
// The front-end proxies `{ctxPath}api/*` to the study backend API and
// `{ctxPath}mturk/*` to Mechanical Turk, so it needs to know where both live.
type Config struct {
	Environment  string        `env:"ENVIRONMENT,default=dev"`
	Host         string        `env:"HOST,default=0.0.0.0"`
	Port         int           `env:"PORT,default=3000"`
	LogLevel     string        `env:"LOG_LEVEL,default=debug"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=60s"`

	// CtxPath is the base path prefix under which all routes are mounted,
	// supporting sub-path deployments. Always ends with a single "/".
	CtxPath string `env:"CTX_PATH,default=/"`

	// study backend API
	APIHost string `env:"API_HOST,default=localhost"`
	APIPort int    `env:"API_PORT,default=8081"`

	// APICtxPath is the base path the backend API is mounted under, for
	// backends deployed behind their own path prefix.
	APICtxPath string `env:"API_CTX_PATH,default=/"`

	// MTurk crediting: when sandbox is enabled the mturk proxy targets the
	// worker sandbox instead of the production site
	MTurkSandbox bool `env:"MTURK_SANDBOX,default=true"`

	RateLimitRPS   int32 `env:"RATE_LIMIT_RPS,default=0"`
	RateLimitBurst int32 `env:"RATE_LIMIT_BURST,default=10"`

	// comma separated list of origins allowed to call the ui-api endpoints
	AllowedOrigins string `env:"ALLOWED_ORIGINS,default=*"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"perf":    true,
	"prod":    true,
	"staging": true,
}

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	cfg.CtxPath = NormalizeCtxPath(cfg.CtxPath)
	cfg.APICtxPath = NormalizeCtxPath(cfg.APICtxPath)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// NormalizeCtxPath forces a leading and trailing slash so route templates can
// always be built as `{ctxPath}api/...`.
func NormalizeCtxPath(ctxPath string) string {
	if ctxPath == "" {
		return "/"
	}
	if !strings.HasPrefix(ctxPath, "/") {
		ctxPath = "/" + ctxPath
	}
	if !strings.HasSuffix(ctxPath, "/") {
		ctxPath += "/"
	}
	return ctxPath
}

// APIBaseURL returns the base URL of the study backend API.
func (cfg *Config) APIBaseURL() string {
	return fmt.Sprintf("http://%s:%d", cfg.APIHost, cfg.APIPort)
}

// Origins returns the parsed allowed-origins list.
func (cfg *Config) Origins() []string {
	parts := strings.Split(cfg.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, perf, staging, prod", cfg.Environment)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}

	if cfg.APIPort < 1 || cfg.APIPort > 65535 {
		return fmt.Errorf("API port must be between 1 and 65535, got %d", cfg.APIPort)
	}

	if cfg.APIHost == "" {
		return fmt.Errorf("API_HOST cannot be empty")
	}

	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive, got %v", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", cfg.IdleTimeout)
	}

	return nil
}
