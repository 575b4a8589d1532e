package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Validate when online mode has no usable provider key.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set: add it to .env or config.yaml, or set USE_OFFLINE_MODE=true to run with the offline responder")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	App         AppConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Assistant
	LLM          LLMConfig
	Storage      StorageConfig
	Plugin       PluginConfig
	Router       RouterConfig
	Conversation ConversationConfig

	// Transports
	NATS NATSConfig
}

type EnvironmentConfig struct {
	Name string
}

type AppConfig struct {
	Name    string
	Version string
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

type RateLimitConfig struct {
	RequestsPerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	OfflineMode     bool             `yaml:"offline_mode"`
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
	SystemPrompt    string           `yaml:"system_prompt"`
	HistoryLimit    int              `yaml:"history_limit"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type StorageConfig struct {
	DBPath string
}

// PluginConfig controls plugin discovery. Enabled names compiled-in plugins;
// every *.go file in Dir is loaded as a script plugin.
type PluginConfig struct {
	Dir           string
	Enabled       []string
	Watch         bool
	ScriptTimeout time.Duration
}

type RouterConfig struct {
	RulesPath string
}

type ConversationConfig struct {
	Backend     string // memory | redis
	RedisURL    string
	TTL         time.Duration
	MaxSessions int
}

type NATSConfig struct {
	Enabled bool
	URL     string
	Subject string
	Timeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/zitta/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/zitta/")

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
	cfg.App.Name = viper.GetString("app.name")
	cfg.App.Version = viper.GetString("app.version")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// LLM Provider Abstraction
	cfg.LLM.OfflineMode = viper.GetBool("llm.offline_mode")
	if viper.IsSet("use_offline_mode") {
		cfg.LLM.OfflineMode = viper.GetBool("use_offline_mode")
	}
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.SystemPrompt = viper.GetString("llm.system_prompt")
	cfg.LLM.HistoryLimit = viper.GetInt("llm.history_limit")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Without a providers section, a single Gemini provider is built from the flat env keys.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "gemini",
			Enabled:  true,
			Priority: 1,
			APIKey:   viper.GetString("gemini_api_key"),
			Model:    viper.GetString("llm_model"),
			Timeout:  "30s",
		}}
	}

	// Storage
	cfg.Storage.DBPath = viper.GetString("storage.db_path")
	if dbPath := viper.GetString("db_path"); dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}

	// Plugins
	cfg.Plugin.Dir = viper.GetString("plugin.dir")
	if pluginDir := viper.GetString("plugin_dir"); pluginDir != "" {
		cfg.Plugin.Dir = pluginDir
	}
	cfg.Plugin.Enabled = splitList(viper.Get("plugin.enabled"))
	cfg.Plugin.Watch = viper.GetBool("plugin.watch")
	cfg.Plugin.ScriptTimeout = viper.GetDuration("plugin.script_timeout")

	// Router
	cfg.Router.RulesPath = viper.GetString("router.rules_path")

	// Conversation
	cfg.Conversation.Backend = viper.GetString("conversation.backend")
	cfg.Conversation.RedisURL = viper.GetString("conversation.redis_url")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Conversation.RedisURL = redisURL
	}
	cfg.Conversation.TTL = viper.GetDuration("conversation.ttl")
	cfg.Conversation.MaxSessions = viper.GetInt("conversation.max_sessions")

	// NATS
	cfg.NATS.Enabled = viper.GetBool("nats.enabled")
	cfg.NATS.URL = viper.GetString("nats.url")
	if natsURL := viper.GetString("nats_url"); natsURL != "" {
		cfg.NATS.URL = natsURL
	}
	cfg.NATS.Subject = viper.GetString("nats.subject")
	cfg.NATS.Timeout = viper.GetDuration("nats.timeout")

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that can only be judged once everything is loaded.
// Offline mode never needs an API key.
func (c *Config) Validate() error {
	if c.LLM.OfflineMode {
		return nil
	}
	for _, p := range c.LLM.Providers {
		if p.Enabled && p.APIKey != "" {
			return nil
		}
	}
	return ErrMissingAPIKey
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("app.name", "ZiTTA")
	viper.SetDefault("app.version", "0.1.0")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.offline_mode", false)
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.history_limit", 20)
	viper.SetDefault("llm_model", "gemini-2.5-flash")

	viper.SetDefault("storage.db_path", "data/zitta.db")

	viper.SetDefault("plugin.dir", "plugins")
	viper.SetDefault("plugin.enabled", []string{"clock"})
	viper.SetDefault("plugin.watch", false)
	viper.SetDefault("plugin.script_timeout", "2s")

	viper.SetDefault("conversation.backend", "memory")
	viper.SetDefault("conversation.ttl", "30m")
	viper.SetDefault("conversation.max_sessions", 1000)

	viper.SetDefault("nats.enabled", false)
	viper.SetDefault("nats.url", "nats://localhost:4222")
	viper.SetDefault("nats.subject", "zitta.chat")
	viper.SetDefault("nats.timeout", "5s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 && !cfg.OfflineMode {
		return fmt.Errorf("no enabled LLM providers")
	}
	if cfg.HistoryLimit < 0 {
		return fmt.Errorf("llm.history_limit must not be negative")
	}

	return nil
}

// splitList accepts either a YAML list or a comma separated env value.
func splitList(raw any) []string {
	var items []string
	switch v := raw.(type) {
	case []string:
		items = v
	case []interface{}:
		for _, it := range v {
			if s, ok := it.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.Split(v, ",")
	}

	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
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

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
