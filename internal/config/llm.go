package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/eventdash/pkg/log"
)

type LLMConfig struct {
	// Allow selecting the provider
	Provider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	// GeminiAPIKey is intentionally not required: the server boots
	// without it and the chat surface reports the missing credential
	// per request.
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`

	CustomBaseURL string `env:"CUSTOM_LLM_BASE_URL"`
	CustomAPIKey  string `env:"CUSTOM_LLM_API_KEY"`
	CustomModel   string `env:"CUSTOM_LLM_MODEL"`

	Timeout time.Duration `env:"LLM_TIMEOUT" envDefault:"120s"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}
