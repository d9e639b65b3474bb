package generator

import (
	"context"
	"fmt"
)

// Fixed generation parameters for every plan request.
const (
	MaxOutputTokens = 8192
	Temperature     = 0.7
)

// Generator produces an itinerary as an ordered stream of text fragments.
// Both channels are closed by the implementation when the stream ends;
// at most one error is ever sent.
type Generator interface {
	Stream(ctx context.Context, prompt string) (<-chan string, <-chan error)
}

// ConfigError reports a missing server-side credential. It is returned
// before any call to the external service is attempted.
type ConfigError struct {
	EnvVar string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing %s", e.EnvVar)
}
