package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}
	if cfg.BodyLimit != 50*1024*1024 {
		t.Errorf("Expected default body limit to be 50MB, got %d", cfg.BodyLimit)
	}
	if cfg.CRMModule != "Occurrences" {
		t.Errorf("Expected default CRM module to be 'Occurrences', got '%s'", cfg.CRMModule)
	}
	if cfg.PollAttempts != 5 {
		t.Errorf("Expected default poll attempts to be 5, got %d", cfg.PollAttempts)
	}
	if cfg.PollDelay != 2*time.Second {
		t.Errorf("Expected default poll delay to be 2s, got %s", cfg.PollDelay)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}
}

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.CRMBaseURL = "https://crm.example.com"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing CRM base URL",
			mutate:  func(c *Config) { c.CRMBaseURL = "" },
			wantErr: true,
		},
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Port = 0 },
			wantErr: true,
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "zero body limit",
			mutate:  func(c *Config) { c.BodyLimit = 0 },
			wantErr: true,
		},
		{
			name:    "empty CRM module",
			mutate:  func(c *Config) { c.CRMModule = "" },
			wantErr: true,
		},
		{
			name:    "parent folder without workdrive URL",
			mutate:  func(c *Config) { c.WorkdriveParentID = "folder-1" },
			wantErr: true,
		},
		{
			name: "parent folder with workdrive URL",
			mutate: func(c *Config) {
				c.WorkdriveParentID = "folder-1"
				c.WorkdriveBaseURL = "https://workdrive.example.com"
			},
			wantErr: false,
		},
		{
			name:    "zero poll attempts",
			mutate:  func(c *Config) { c.PollAttempts = 0 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
