package generator_fx

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/generator"
)

var Module = fx.Provide(ProvideGenerator)

// GeneratorConfig holds configuration for the plan generator.
type GeneratorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerator creates a streaming generator based on environment
// variables. A missing API key is not fatal here: the plan handler reports
// it per request as a server misconfiguration.
func ProvideGenerator(logger *zap.Logger) (generator.Generator, error) {
	config := getGeneratorConfig()

	logger.Info("Initializing plan generator",
		zap.String("provider", config.Provider),
		zap.String("model", config.Model),
		zap.Bool("credential_present", config.APIKey != ""))

	switch strings.ToLower(config.Provider) {
	case "openai":
		return generator.NewOpenAIGenerator(config.APIKey, config.Model), nil
	case "gemini":
		return generator.NewGeminiGenerator(config.APIKey, config.Model), nil
	default:
		return nil, fmt.Errorf("unsupported plan provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// getGeneratorConfig reads configuration from environment variables.
func getGeneratorConfig() GeneratorConfig {
	provider := getEnvWithDefault("PLAN_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GOOGLE_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
	}

	return GeneratorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value.
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
