package llm

import (
	"fmt"

	"github.com/sandevgo/eventdash/internal/config"
	"github.com/sandevgo/eventdash/internal/core"
)

// NewProvider creates the configured TextGenerator. A nil generator
// with a nil error means the selected provider has no credential set;
// the chat surface reports that per request instead of refusing to
// boot.
func NewProvider(cfg *config.LLMConfig) (core.TextGenerator, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return NewGemini(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout), nil
	case "custom":
		if cfg.CustomBaseURL == "" {
			return nil, fmt.Errorf("CUSTOM_LLM_BASE_URL is required for the custom provider")
		}
		return NewCustomOpenAI(cfg.CustomBaseURL, cfg.CustomAPIKey, cfg.CustomModel, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
