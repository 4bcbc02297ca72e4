package factory

import (
	"fmt"

	"crowlands-be/pkg/llm"
	"crowlands-be/pkg/llm/ollama"
	"crowlands-be/pkg/llm/openai"
)

// NewLLMProvider creates an instance of LLMProvider based on config.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai", "":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		provider := openai.NewOpenAIProvider(apiKey, modelName)
		if baseURL != "" {
			provider.BaseURL = baseURL
		}
		return provider, nil
	case "ollama":
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider type: %s", providerType)
	}
}
