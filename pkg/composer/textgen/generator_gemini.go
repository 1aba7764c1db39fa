package textgen

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type GeminiPipeline struct {
	model  string
	client *genai.Client
}

var _ Pipeline = (*GeminiPipeline)(nil)

func NewGeminiPipeline(ctx context.Context, apiKey string, model string) (*GeminiPipeline, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiPipeline{
		model:  model,
		client: client,
	}, nil
}

// Generate prefixes every candidate with the prompt, since Gemini only
// returns the continuation.
func (p *GeminiPipeline) Generate(ctx context.Context, prompt string, opts GenerateOptions) ([]Candidate, error) {
	temperature := opts.Temperature
	if !opts.Sample {
		temperature = 0
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: int32(opts.MaxLength),
		CandidateCount:  1,
	}

	res, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(res.Candidates))
	for _, candidate := range res.Candidates {
		// blocked candidates come back without content
		if candidate.Content == nil {
			continue
		}

		var text strings.Builder
		text.WriteString(prompt)
		for _, part := range candidate.Content.Parts {
			text.WriteString(part.Text)
		}

		candidates = append(candidates, Candidate{GeneratedText: text.String()})
	}

	return candidates, nil
}
