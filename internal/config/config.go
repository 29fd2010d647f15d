// Package config loads the portal configuration from flags and environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultPort         = 8080
	DefaultHost         = "127.0.0.1"
	DefaultLogLevel     = "info"
	DefaultBodyLimit    = 50 * 1024 * 1024 // 50MB; submissions carry photo attachments
	DefaultPollAttempts = 5
	DefaultPollDelay    = 2 * time.Second
	DefaultCRMModule    = "Occurrences"
)

// Config holds all configuration for the occurrence portal server.
type Config struct {
	// Server configuration
	Host      string
	Port      int
	BodyLimit int

	// CRM configuration
	CRMBaseURL string
	CRMToken   string
	CRMModule  string

	// Document store configuration
	WorkdriveBaseURL  string
	WorkdriveToken    string
	WorkdriveParentID string

	// Occurrence-ID polling
	PollAttempts int
	PollDelay    time.Duration

	// Application configuration
	Version  string
	LogLevel string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:         DefaultHost,
		Port:         DefaultPort,
		BodyLimit:    DefaultBodyLimit,
		CRMModule:    DefaultCRMModule,
		PollAttempts: DefaultPollAttempts,
		PollDelay:    DefaultPollDelay,
		Version:      "1.0.0",
		LogLevel:     DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("OCC_PORTAL")
	viper.AutomaticEnv()

	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("bodylimit", cfg.BodyLimit)
	viper.SetDefault("crm_base_url", cfg.CRMBaseURL)
	viper.SetDefault("crm_token", cfg.CRMToken)
	viper.SetDefault("crm_module", cfg.CRMModule)
	viper.SetDefault("workdrive_base_url", cfg.WorkdriveBaseURL)
	viper.SetDefault("workdrive_token", cfg.WorkdriveToken)
	viper.SetDefault("workdrive_parent_id", cfg.WorkdriveParentID)
	viper.SetDefault("poll_attempts", cfg.PollAttempts)
	viper.SetDefault("poll_delay", cfg.PollDelay)
	viper.SetDefault("loglevel", cfg.LogLevel)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("host", cfg.Host, "Server host address")
	pflag.Int("port", cfg.Port, "Server port")
	pflag.Int("bodylimit", cfg.BodyLimit, "Maximum request body size in bytes")
	pflag.String("crm-base-url", cfg.CRMBaseURL, "Base URL of the CRM API")
	pflag.String("crm-token", cfg.CRMToken, "CRM OAuth token")
	pflag.String("crm-module", cfg.CRMModule, "CRM module holding occurrence records")
	pflag.String("workdrive-base-url", cfg.WorkdriveBaseURL, "Base URL of the document store API")
	pflag.String("workdrive-token", cfg.WorkdriveToken, "Document store OAuth token")
	pflag.String("workdrive-parent-id", cfg.WorkdriveParentID, "Parent folder for occurrence attachments (empty disables uploads)")
	pflag.Int("poll-attempts", cfg.PollAttempts, "Occurrence ID fetch attempts after record creation")
	pflag.Duration("poll-delay", cfg.PollDelay, "Delay between occurrence ID fetch attempts")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("bodylimit", pflag.Lookup("bodylimit"))
	_ = viper.BindPFlag("crm_base_url", pflag.Lookup("crm-base-url"))
	_ = viper.BindPFlag("crm_token", pflag.Lookup("crm-token"))
	_ = viper.BindPFlag("crm_module", pflag.Lookup("crm-module"))
	_ = viper.BindPFlag("workdrive_base_url", pflag.Lookup("workdrive-base-url"))
	_ = viper.BindPFlag("workdrive_token", pflag.Lookup("workdrive-token"))
	_ = viper.BindPFlag("workdrive_parent_id", pflag.Lookup("workdrive-parent-id"))
	_ = viper.BindPFlag("poll_attempts", pflag.Lookup("poll-attempts"))
	_ = viper.BindPFlag("poll_delay", pflag.Lookup("poll-delay"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOccurrence Portal - aviation incident reporting API server\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  OCC_PORTAL_HOST                 Server host\n")
		fmt.Fprintf(os.Stderr, "  OCC_PORTAL_PORT                 Server port\n")
		fmt.Fprintf(os.Stderr, "  OCC_PORTAL_CRM_BASE_URL         CRM API base URL\n")
		fmt.Fprintf(os.Stderr, "  OCC_PORTAL_CRM_TOKEN            CRM OAuth token\n")
		fmt.Fprintf(os.Stderr, "  OCC_PORTAL_WORKDRIVE_BASE_URL   Document store base URL\n")
		fmt.Fprintf(os.Stderr, "  OCC_PORTAL_WORKDRIVE_TOKEN      Document store OAuth token\n")
		fmt.Fprintf(os.Stderr, "  OCC_PORTAL_WORKDRIVE_PARENT_ID  Attachment parent folder\n")
		fmt.Fprintf(os.Stderr, "  OCC_PORTAL_LOGLEVEL             Log level\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.BodyLimit = viper.GetInt("bodylimit")
	cfg.CRMBaseURL = viper.GetString("crm_base_url")
	cfg.CRMToken = viper.GetString("crm_token")
	cfg.CRMModule = viper.GetString("crm_module")
	cfg.WorkdriveBaseURL = viper.GetString("workdrive_base_url")
	cfg.WorkdriveToken = viper.GetString("workdrive_token")
	cfg.WorkdriveParentID = viper.GetString("workdrive_parent_id")
	cfg.PollAttempts = viper.GetInt("poll_attempts")
	cfg.PollDelay = viper.GetDuration("poll_delay")
	cfg.LogLevel = viper.GetString("loglevel")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if c.BodyLimit <= 0 {
		return errors.New("body limit must be positive")
	}
	if c.CRMBaseURL == "" {
		return errors.New("CRM base URL cannot be empty")
	}
	if c.CRMModule == "" {
		return errors.New("CRM module cannot be empty")
	}
	if c.WorkdriveParentID != "" && c.WorkdriveBaseURL == "" {
		return errors.New("a workdrive parent folder requires a workdrive base URL")
	}
	if c.PollAttempts < 1 {
		return errors.New("poll attempts must be at least 1")
	}
	if c.PollDelay < 0 {
		return errors.New("poll delay cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}
