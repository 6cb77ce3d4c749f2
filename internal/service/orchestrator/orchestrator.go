package orchestrator

import (
	"context"

	"github.com/sandevgo/eventdash/internal/core"
	"github.com/sandevgo/eventdash/pkg/log"
)

// Orchestrator builds the domain prompt and forwards it to the
// generative-AI provider. It holds no conversation state; the caller
// re-sends the full history on every turn.
type Orchestrator struct {
	gen core.TextGenerator
}

// New accepts a nil generator: the credential may be unset, in which
// case every Converse call fails with a ConfigError.
func New(gen core.TextGenerator) *Orchestrator {
	return &Orchestrator{gen: gen}
}

func (o *Orchestrator) Converse(ctx context.Context, prompt string, data *core.EventAggregate, history []core.ChatTurn) (string, error) {
	if data == nil {
		return "", &core.ValidationError{Message: "Data payload is required"}
	}
	if o.gen == nil {
		return "", &core.ConfigError{Message: "Gemini API key not set"}
	}

	rendered, err := BuildPrompt(*data, history, prompt)
	if err != nil {
		return "", &core.OrchestratorError{Err: err}
	}

	if e := log.FromCtx(ctx).Debug(); e.Enabled() {
		e.Int("history", len(history)).
			Int("prompt_tokens", countTokens(rendered)).
			Msg("submitting prompt")
	}

	text, err := o.gen.Generate(ctx, rendered)
	if err != nil {
		return "", &core.OrchestratorError{Err: err}
	}
	return text, nil
}
