package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiGenerator streams itineraries from Google's Gemini models.
type GeminiGenerator struct {
	apiKey string
	model  string
}

func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiGenerator{apiKey: apiKey, model: model}
}

func (g *GeminiGenerator) Stream(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		if g.apiKey == "" {
			errs <- &ConfigError{EnvVar: "GOOGLE_API_KEY"}
			return
		}

		client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
		if err != nil {
			errs <- fmt.Errorf("failed to create Gemini client: %w", err)
			return
		}
		defer client.Close()

		model := client.GenerativeModel(g.model)
		model.SetMaxOutputTokens(MaxOutputTokens)
		model.SetTemperature(Temperature)

		it := model.GenerateContentStream(ctx, genai.Text(prompt))
		for {
			resp, err := it.Next()
			if errors.Is(err, iterator.Done) {
				return
			}
			if err != nil {
				errs <- fmt.Errorf("gemini stream: %w", err)
				return
			}
			for _, cand := range resp.Candidates {
				if cand.Content == nil {
					continue
				}
				for _, part := range cand.Content.Parts {
					text, ok := part.(genai.Text)
					if !ok || text == "" {
						continue
					}
					select {
					case chunks <- string(text):
					case <-ctx.Done():
						errs <- ctx.Err()
						return
					}
				}
			}
		}
	}()

	return chunks, errs
}
