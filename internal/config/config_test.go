package config

import (
	"reflect"
	"testing"
)

func TestNormalizeCtxPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "/"},
		{"root", "/", "/"},
		{"bare name", "study", "/study/"},
		{"leading slash only", "/study", "/study/"},
		{"trailing slash only", "study/", "/study/"},
		{"already normalized", "/study/", "/study/"},
		{"nested", "/apps/study", "/apps/study/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCtxPath(tt.input); got != tt.want {
				t.Errorf("NormalizeCtxPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{"wildcard", "*", []string{"*"}},
		{"single", "https://example.com", []string{"https://example.com"}},
		{"multiple with spaces", "https://a.com, https://b.com", []string{"https://a.com", "https://b.com"}},
		{"trailing comma", "https://a.com,", []string{"https://a.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{AllowedOrigins: tt.origins}
			if got := cfg.Origins(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Origins() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	valid := Config{
		Environment:  "dev",
		Port:         3000,
		APIHost:      "localhost",
		APIPort:      8081,
		ReadTimeout:  1,
		WriteTimeout: 1,
		IdleTimeout:  1,
	}

	if err := validateConfig(&valid); err != nil {
		t.Fatalf("validateConfig() error = %v for valid config", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad environment", func(c *Config) { c.Environment = "production" }},
		{"bad port", func(c *Config) { c.Port = 0 }},
		{"bad api port", func(c *Config) { c.APIPort = 70000 }},
		{"empty api host", func(c *Config) { c.APIHost = "" }},
		{"zero read timeout", func(c *Config) { c.ReadTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := validateConfig(&cfg); err == nil {
				t.Error("validateConfig() expected error")
			}
		})
	}
}

func TestAPIBaseURL(t *testing.T) {
	cfg := Config{APIHost: "backend.internal", APIPort: 9000}
	if got := cfg.APIBaseURL(); got != "http://backend.internal:9000" {
		t.Errorf("APIBaseURL() = %q", got)
	}
}
