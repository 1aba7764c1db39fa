package setup

const (
	EnvConfigFile          = "CONFIG_FILE"
	EnvListenAddr          = "LISTEN_ADDR"
	EnvModelProvider       = "MODEL_PROVIDER"
	EnvModelName           = "MODEL_NAME"
	EnvOpenAiBaseUrl       = "OPENAI_BASE_URL"
	EnvOpenAiApiKey        = "OPENAI_API_KEY"
	EnvGeminiApiKey        = "GEMINI_API_KEY"
	EnvModelTemperature    = "MODEL_TEMPERATURE"
	EnvModelMaxConcurrency = "MODEL_MAX_CONCURRENCY"
	EnvMessageCacheSize    = "MESSAGE_CACHE_SIZE"
	EnvMessageCacheTTL     = "MESSAGE_CACHE_TTL"
	EnvPinataJwtKey        = "PINATA_JWT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
)

const (
	ProviderOpenAi = "openai"
	ProviderGemini = "gemini"
)

const (
	defaultListenAddr          = ":7860"
	defaultOpenAiBaseUrl       = "http://localhost:8000/v1"
	defaultOpenAiModel         = "EleutherAI/gpt-neo-125M"
	defaultGeminiModel         = "gemini-2.5-flash"
	defaultModelTemperature    = 0.9
	defaultModelMaxConcurrency = 1
	defaultMessageCacheSize    = 1000
	defaultMessageCacheTTL     = "1h"
	defaultLogLevel            = "info"
	defaultLogFormat           = "text"
)
