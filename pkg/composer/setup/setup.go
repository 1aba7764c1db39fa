package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"github.com/NethermindEth/lovenotes/pkg/composer/debug"
)

type SetupResult struct {
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
	RandomSeed          uint64
	HasRandomSeed       bool
}

func Setup(ctx context.Context) (*SetupResult, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
		slog.Debug("no .env file found")
	}

	config, err := NewConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get config from env: %w", err)
	}

	InitLogger(config.LogLevel, config.LogFormat)

	setupResult := newSetupResult(config)

	if debug.IsDebugShowSetup() {
		slog.InfoContext(ctx, "setup output", "setupOutput", setupResult)
	}

	return setupResult, nil
}

func newSetupResult(config *Config) *SetupResult {
	seed, hasSeed := debug.RandomSeed()

	return &SetupResult{
		ListenAddr:          config.ListenAddr,
		ModelProvider:       config.ModelProvider,
		ModelName:           config.ModelName,
		OpenAiBaseUrl:       config.OpenAiBaseUrl,
		OpenAiApiKey:        config.OpenAiApiKey,
		GeminiApiKey:        config.GeminiApiKey,
		ModelTemperature:    config.ModelTemperature,
		ModelMaxConcurrency: config.ModelMaxConcurrency,
		MessageCacheSize:    config.MessageCacheSize,
		MessageCacheTTL:     config.MessageCacheTTL,
		PinataJwtKey:        config.PinataJwtKey,
		RandomSeed:          seed,
		HasRandomSeed:       hasSeed,
	}
}

// LogValue keeps credentials out of logs.
func (s *SetupResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("listenAddr", s.ListenAddr),
		slog.String("modelProvider", s.ModelProvider),
		slog.String("modelName", s.ModelName),
		slog.String("openAiBaseUrl", s.OpenAiBaseUrl),
		slog.String("openAiApiKey", redact(s.OpenAiApiKey)),
		slog.String("geminiApiKey", redact(s.GeminiApiKey)),
		slog.Float64("modelTemperature", float64(s.ModelTemperature)),
		slog.Int("modelMaxConcurrency", s.ModelMaxConcurrency),
		slog.Int("messageCacheSize", s.MessageCacheSize),
		slog.Duration("messageCacheTTL", s.MessageCacheTTL),
		slog.String("pinataJwtKey", redact(s.PinataJwtKey)),
		slog.Bool("hasRandomSeed", s.HasRandomSeed),
	)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "[redacted]"
}
