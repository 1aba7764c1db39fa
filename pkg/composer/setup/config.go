package setup

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr          string
	ModelProvider       string
	ModelName           string
	OpenAiBaseUrl       string
	OpenAiApiKey        string
	GeminiApiKey        string
	ModelTemperature    float32
	ModelMaxConcurrency int
	MessageCacheSize    int
	MessageCacheTTL     time.Duration
	PinataJwtKey        string
	LogLevel            string
	LogFormat           string
}

// NewConfigFromEnv resolves the configuration from defaults, the optional
// CONFIG_FILE yaml file and the environment, in increasing priority.
func NewConfigFromEnv() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile := os.Getenv(EnvConfigFile); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	config := &Config{
		ListenAddr:          v.GetString(key(EnvListenAddr)),
		ModelProvider:       strings.ToLower(v.GetString(key(EnvModelProvider))),
		ModelName:           v.GetString(key(EnvModelName)),
		OpenAiBaseUrl:       v.GetString(key(EnvOpenAiBaseUrl)),
		OpenAiApiKey:        v.GetString(key(EnvOpenAiApiKey)),
		GeminiApiKey:        v.GetString(key(EnvGeminiApiKey)),
		ModelTemperature:    float32(v.GetFloat64(key(EnvModelTemperature))),
		ModelMaxConcurrency: v.GetInt(key(EnvModelMaxConcurrency)),
		MessageCacheSize:    v.GetInt(key(EnvMessageCacheSize)),
		MessageCacheTTL:     v.GetDuration(key(EnvMessageCacheTTL)),
		PinataJwtKey:        v.GetString(key(EnvPinataJwtKey)),
		LogLevel:            strings.ToLower(v.GetString(key(EnvLogLevel))),
		LogFormat:           strings.ToLower(v.GetString(key(EnvLogFormat))),
	}

	if config.ModelName == "" {
		config.ModelName = defaultModelName(config.ModelProvider)
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.ModelProvider {
	case ProviderOpenAi:
	case ProviderGemini:
		if c.GeminiApiKey == "" {
			return errors.New("GEMINI_API_KEY is required")
		}
	default:
		return fmt.Errorf("MODEL_PROVIDER must be %q or %q, got %q", ProviderOpenAi, ProviderGemini, c.ModelProvider)
	}
	if c.ModelName == "" {
		return errors.New("MODEL_NAME is required")
	}
	if c.ModelTemperature < 0 {
		return errors.New("MODEL_TEMPERATURE must not be negative")
	}
	if c.ModelMaxConcurrency < 1 {
		return errors.New("MODEL_MAX_CONCURRENCY must be at least 1")
	}
	if c.MessageCacheSize < 1 {
		return errors.New("MESSAGE_CACHE_SIZE must be at least 1")
	}
	if c.MessageCacheTTL <= 0 {
		return errors.New("MESSAGE_CACHE_TTL must be positive")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(key(EnvListenAddr), defaultListenAddr)
	v.SetDefault(key(EnvModelProvider), ProviderOpenAi)
	v.SetDefault(key(EnvOpenAiBaseUrl), defaultOpenAiBaseUrl)
	v.SetDefault(key(EnvModelTemperature), defaultModelTemperature)
	v.SetDefault(key(EnvModelMaxConcurrency), defaultModelMaxConcurrency)
	v.SetDefault(key(EnvMessageCacheSize), defaultMessageCacheSize)
	v.SetDefault(key(EnvMessageCacheTTL), defaultMessageCacheTTL)
	v.SetDefault(key(EnvLogLevel), defaultLogLevel)
	v.SetDefault(key(EnvLogFormat), defaultLogFormat)
}

func defaultModelName(provider string) string {
	if provider == ProviderGemini {
		return defaultGeminiModel
	}
	return defaultOpenAiModel
}

// key maps an environment variable name to its viper key.
func key(env string) string {
	return strings.ToLower(env)
}
