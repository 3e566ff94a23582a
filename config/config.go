package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// GitHub administration specifics
	GitHub GitHubConfig
	Sync   SyncConfig

	// Webhooks
	Webhook WebhookConfig

	// API keys for the administrative surface
	APIKeys []APIKeyConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GitHubConfig holds the GitHub App identity and API endpoint.
type GitHubConfig struct {
	AppID          int64
	InstallationID int64
	PrivateKey     string // PEM content
	PrivateKeyPath string // read when PrivateKey is empty
	APIBaseURL     string
	Organization   string
}

// SyncConfig controls the background synchronization jobs.
type SyncConfig struct {
	PullRequestInterval string // e.g. "1h"
	RepositoryInterval  string // e.g. "24h"
	PageSize            int
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// APIKeyConfig maps an API key to a user and role.
type APIKeyConfig struct {
	Key  string
	User string
	Role string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// GitHub App
	cfg.GitHub.AppID = viper.GetInt64("github.app_id")
	cfg.GitHub.InstallationID = viper.GetInt64("github.installation_id")
	cfg.GitHub.PrivateKey = expandEnvVar(viper.GetString("github.private_key"))
	cfg.GitHub.PrivateKeyPath = viper.GetString("github.private_key_path")
	cfg.GitHub.APIBaseURL = viper.GetString("github.api_base_url")
	cfg.GitHub.Organization = viper.GetString("github.organization")
	if appID := viper.GetInt64("github_app_id"); appID != 0 {
		cfg.GitHub.AppID = appID
	}
	if instID := viper.GetInt64("github_installation_id"); instID != 0 {
		cfg.GitHub.InstallationID = instID
	}
	if key := viper.GetString("github_private_key"); key != "" {
		cfg.GitHub.PrivateKey = key
	}

	if cfg.GitHub.AppID == 0 || cfg.GitHub.InstallationID == 0 {
		return nil, fmt.Errorf("github.app_id and github.installation_id are required")
	}

	// Sync jobs
	cfg.Sync.PullRequestInterval = viper.GetString("sync.pull_request_interval")
	cfg.Sync.RepositoryInterval = viper.GetString("sync.repository_interval")
	cfg.Sync.PageSize = viper.GetInt("sync.page_size")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = expandEnvVar(viper.GetString("webhook.secret"))
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	// API keys
	if viper.IsSet("api_keys") {
		keysRaw := viper.Get("api_keys")
		if keysList, ok := keysRaw.([]interface{}); ok {
			for _, k := range keysList {
				if keyMap, ok := k.(map[string]interface{}); ok {
					cfg.APIKeys = append(cfg.APIKeys, APIKeyConfig{
						Key:  expandEnvVar(getStringFromMap(keyMap, "key")),
						User: getStringFromMap(keyMap, "user"),
						Role: getStringFromMap(keyMap, "role"),
					})
				}
			}
		}
	}

	return cfg, nil
}

// ReadPrivateKey returns the GitHub App private key PEM, loading it from
// PrivateKeyPath when the inline value is empty.
func (c *Config) ReadPrivateKey() ([]byte, error) {
	if c.GitHub.PrivateKey != "" {
		return []byte(c.GitHub.PrivateKey), nil
	}
	if c.GitHub.PrivateKeyPath == "" {
		return nil, fmt.Errorf("github private key not configured")
	}
	key, err := os.ReadFile(c.GitHub.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}
	return key, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("github.api_base_url", "https://api.github.com")
	viper.SetDefault("sync.pull_request_interval", "1h")
	viper.SetDefault("sync.repository_interval", "24h")
	viper.SetDefault("sync.page_size", 100)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", true)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
