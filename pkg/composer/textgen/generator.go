package textgen

import (
	"context"
	"errors"
)

const (
	DefaultTemperature float32 = 0.9
	DefaultMaxLength           = 60
)

var ErrNoCandidates = errors.New("pipeline returned no candidates")

type GenerateOptions struct {
	MaxLength   int
	Sample      bool
	Temperature float32
}

type Candidate struct {
	GeneratedText string `json:"generated_text"`
}

// Pipeline is a text-generation backend. GeneratedText carries the full
// text, prompt included.
type Pipeline interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) ([]Candidate, error)
}

type Adapter struct {
	pipeline    Pipeline
	temperature float32
}

type AdapterOption func(*Adapter)

func WithTemperature(temperature float32) AdapterOption {
	return func(a *Adapter) {
		a.temperature = temperature
	}
}

func NewAdapter(pipeline Pipeline, opts ...AdapterOption) *Adapter {
	adapter := &Adapter{
		pipeline:    pipeline,
		temperature: DefaultTemperature,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// Generate samples one continuation of prompt and returns the first
// candidate verbatim. Pipeline errors are returned as is.
func (a *Adapter) Generate(ctx context.Context, prompt string, maxLength int) (string, error) {
	candidates, err := a.pipeline.Generate(ctx, prompt, GenerateOptions{
		MaxLength:   maxLength,
		Sample:      true,
		Temperature: a.temperature,
	})
	if err != nil {
		return "", err
	}

	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}

	return candidates[0].GeneratedText, nil
}
