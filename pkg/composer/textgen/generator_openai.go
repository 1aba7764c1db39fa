package textgen

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// OpenAiPipeline talks to the completions endpoint of any OpenAI-compatible
// server, e.g. vLLM or TGI serving EleutherAI/gpt-neo-125M.
type OpenAiPipeline struct {
	model  string
	client *openai.Client
}

var _ Pipeline = (*OpenAiPipeline)(nil)

func NewOpenAiPipeline(apiKey string, baseUrl string, model string) *OpenAiPipeline {
	config := openai.DefaultConfig(apiKey)
	if baseUrl != "" {
		config.BaseURL = baseUrl
	}

	return &OpenAiPipeline{
		model:  model,
		client: openai.NewClientWithConfig(config),
	}
}

func (p *OpenAiPipeline) Generate(ctx context.Context, prompt string, opts GenerateOptions) ([]Candidate, error) {
	temperature := opts.Temperature
	if !opts.Sample {
		temperature = 0
	}

	req := openai.CompletionRequest{
		Model:       p.model,
		Prompt:      prompt,
		MaxTokens:   opts.MaxLength,
		Temperature: temperature,
		N:           1,
		Echo:        true,
	}

	resp, err := p.client.CreateCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		candidates = append(candidates, Candidate{GeneratedText: choice.Text})
	}

	return candidates, nil
}
