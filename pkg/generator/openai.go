package generator

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator streams itineraries from OpenAI chat-completion models.
type OpenAIGenerator struct {
	apiKey string
	model  string
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerator{apiKey: apiKey, model: model}
}

func (g *OpenAIGenerator) Stream(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		if g.apiKey == "" {
			errs <- &ConfigError{EnvVar: "OPENAI_API_KEY"}
			return
		}

		client := openai.NewClient(g.apiKey)
		stream, err := client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
			Model:       g.model,
			MaxTokens:   MaxOutputTokens,
			Temperature: Temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Stream: true,
		})
		if err != nil {
			errs <- fmt.Errorf("failed to open OpenAI stream: %w", err)
			return
		}
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				errs <- fmt.Errorf("openai stream: %w", err)
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			delta := resp.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case chunks <- delta:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return chunks, errs
}
