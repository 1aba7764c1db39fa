package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/NethermindEth/lovenotes/pkg/composer/filestorage"
	"github.com/NethermindEth/lovenotes/pkg/composer/keepsake"
	"github.com/NethermindEth/lovenotes/pkg/composer/phrasebook"
	"github.com/NethermindEth/lovenotes/pkg/composer/setup"
	"github.com/NethermindEth/lovenotes/pkg/composer/textgen"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrPinningDisabled = errors.New("pinning is not configured")
)

type Composer struct {
	phrasebook       *phrasebook.Phrasebook
	textGenerator    TextGenerator
	keepsakeUploader *keepsake.Uploader
	inferencePool    pond.ResultPool[string]
	apiRouter        *gin.Engine

	messages *expirable.LRU[string, Message]

	listenAddr string
}

type ComposerConfig struct {
	Phrasebook    *phrasebook.Phrasebook
	TextGenerator TextGenerator
	Uploader      filestorage.Uploader

	ListenAddr          string
	ModelMaxConcurrency int
	MessageCacheSize    int
	MessageCacheTTL     time.Duration
}

const (
	defaultModelMaxConcurrency = 1
	defaultMessageCacheSize    = 1000
	defaultMessageCacheTTL     = 1 * time.Hour
)

func NewComposer(ctx context.Context, config *ComposerConfig) (*Composer, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}
	if config.TextGenerator == nil {
		return nil, errors.New("text generator is nil")
	}

	pb := config.Phrasebook
	if pb == nil {
		pb = phrasebook.New(nil)
	}

	maxConcurrency := config.ModelMaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = defaultModelMaxConcurrency
	}

	cacheSize := config.MessageCacheSize
	if cacheSize <= 0 {
		cacheSize = defaultMessageCacheSize
	}

	cacheTTL := config.MessageCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultMessageCacheTTL
	}

	var keepsakeUploader *keepsake.Uploader
	if config.Uploader != nil {
		keepsakeUploader = keepsake.NewUploader(config.Uploader)
	}

	composer := &Composer{
		phrasebook:       pb,
		textGenerator:    config.TextGenerator,
		keepsakeUploader: keepsakeUploader,
		inferencePool:    pond.NewResultPool[string](maxConcurrency),
		apiRouter:        nil,

		messages: expirable.NewLRU[string, Message](cacheSize, nil, cacheTTL),

		listenAddr: config.ListenAddr,
	}

	composer.apiRouter = composer.generateRouter()

	return composer, nil
}

func NewComposerConfigFromSetupResult(ctx context.Context, setupResult *setup.SetupResult) (*ComposerConfig, error) {
	if setupResult == nil {
		return nil, errors.New("setup result is nil")
	}

	var pipeline textgen.Pipeline
	switch setupResult.ModelProvider {
	case setup.ProviderGemini:
		geminiPipeline, err := textgen.NewGeminiPipeline(ctx, setupResult.GeminiApiKey, setupResult.ModelName)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini pipeline: %w", err)
		}
		pipeline = geminiPipeline
	default:
		pipeline = textgen.NewOpenAiPipeline(setupResult.OpenAiApiKey, setupResult.OpenAiBaseUrl, setupResult.ModelName)
	}

	var rng phrasebook.Rand
	if setupResult.HasRandomSeed {
		rng = rand.New(rand.NewPCG(setupResult.RandomSeed, setupResult.RandomSeed))
	}

	var uploader filestorage.Uploader
	if setupResult.PinataJwtKey != "" {
		uploader = filestorage.NewPinataUploader(setupResult.PinataJwtKey)
	}

	return &ComposerConfig{
		Phrasebook:    phrasebook.New(rng),
		TextGenerator: textgen.NewAdapter(pipeline, textgen.WithTemperature(setupResult.ModelTemperature)),
		Uploader:      uploader,

		ListenAddr:          setupResult.ListenAddr,
		ModelMaxConcurrency: setupResult.ModelMaxConcurrency,
		MessageCacheSize:    setupResult.MessageCacheSize,
		MessageCacheTTL:     setupResult.MessageCacheTTL,
	}, nil
}

// Start serves the API until ctx is done. The composer cannot be restarted.
func (c *Composer) Start(ctx context.Context) error {
	defer c.inferencePool.StopAndWait()

	return c.StartServer(ctx)
}

func (c *Composer) GenerateTemplate(ctx context.Context, contentType phrasebook.ContentType, overrides phrasebook.Overrides) *Message {
	text := c.phrasebook.Generate(contentType, overrides)

	message := newMessage(GeneratorTemplate, text)
	message.ContentType = contentType
	c.storeMessage(message)

	generationsTotal.WithLabelValues(string(GeneratorTemplate), string(contentType)).Inc()
	slog.DebugContext(ctx, "generated template message", "id", message.ID, "contentType", contentType)

	return message
}

// GenerateModel queues the prompt on the inference pool and waits for the
// pipeline result. A zero maxLength selects textgen.DefaultMaxLength.
func (c *Composer) GenerateModel(ctx context.Context, prompt string, maxLength int) (*Message, error) {
	if maxLength <= 0 {
		maxLength = textgen.DefaultMaxLength
	}

	start := time.Now()
	task := c.inferencePool.SubmitErr(func() (string, error) {
		// the caller may have gone away while the task was queued
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return c.textGenerator.Generate(ctx, prompt, maxLength)
	})

	text, err := task.Wait()
	modelGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		generationFailuresTotal.WithLabelValues(string(GeneratorModel)).Inc()
		slog.ErrorContext(ctx, "failed to generate text", "error", err, "maxLength", maxLength)
		return nil, err
	}

	message := newMessage(GeneratorModel, text)
	message.Prompt = prompt
	c.storeMessage(message)

	generationsTotal.WithLabelValues(string(GeneratorModel), "").Inc()

	return message, nil
}

func (c *Composer) PinMessage(ctx context.Context, id string) (string, error) {
	if c.keepsakeUploader == nil {
		return "", ErrPinningDisabled
	}

	message, err := c.Message(id)
	if err != nil {
		return "", err
	}

	cid, err := c.keepsakeUploader.Upload(ctx, message.keepsake())
	if err != nil {
		slog.ErrorContext(ctx, "failed to pin message", "id", id, "error", err)
		return "", err
	}

	slog.InfoContext(ctx, "pinned message", "id", id, "cid", cid)

	return cid, nil
}

func (c *Composer) Phrasebook() *phrasebook.Phrasebook {
	return c.phrasebook
}

func (c *Composer) ListenAddr() string {
	return c.listenAddr
}

func (c *Composer) PinningEnabled() bool {
	return c.keepsakeUploader != nil
}
