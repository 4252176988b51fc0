package expansion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/askewbot/askew-trainer/internal/intents"
	"github.com/askewbot/askew-trainer/internal/llm"
	"go.uber.org/zap"
)

// APIExpander produces an expansion by calling a generative API.
type APIExpander interface {
	ExpandViaAPI(ctx context.Context, question, tag string) (intents.Expansion, error)
}

// Provider expands questions through an LLM client.
type Provider struct {
	client    llm.LLMClient
	knowledge string
	logger    *zap.Logger
}

// NewProvider creates a Provider. knowledge is embedded in every prompt;
// pass KnowledgeContext for the default Askew context.
func NewProvider(client llm.LLMClient, knowledge string, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{client: client, knowledge: knowledge, logger: logger.Named("expansion")}
}

// ExpandViaAPI asks the model for patterns and responses for question.
func (p *Provider) ExpandViaAPI(ctx context.Context, question, tag string) (intents.Expansion, error) {
	if p.client == nil {
		return intents.Expansion{}, fmt.Errorf("%w: no client configured", ErrProviderUnavailable)
	}

	prompt := BuildPrompt(p.knowledge, question, tag)
	p.logger.Debug("requesting expansion",
		zap.String("tag", tag),
		zap.Int("prompt_bytes", len(prompt)))

	resp, err := p.client.Generate(ctx, llm.GenerateRequest{UserPrompt: prompt})
	if err != nil {
		if errors.Is(err, llm.ErrProviderUnavailable) {
			return intents.Expansion{}, err
		}
		return intents.Expansion{}, fmt.Errorf("%w: %w", ErrNetworkOrAPI, err)
	}

	exp, err := ParseReply(resp.Text)
	if err != nil {
		p.logger.Debug("unusable model reply", zap.Error(err), zap.String("raw", resp.Text))
		return intents.Expansion{}, err
	}
	p.logger.Debug("expansion parsed",
		zap.Int("patterns", len(exp.Patterns)),
		zap.Int("responses", len(exp.Responses)))
	return exp, nil
}

// ParseReply recovers an expansion from raw model output.
func ParseReply(raw string) (intents.Expansion, error) {
	parsed, err := llm.ExtractJSON[intents.Expansion](raw, nil)
	if err != nil {
		return intents.Expansion{}, fmt.Errorf("%w: %v\n%s", ErrUnparsableResponse, err, raw)
	}

	exp := intents.Expansion{
		Patterns:  cleanEntries(parsed.Patterns),
		Responses: cleanEntries(parsed.Responses),
	}
	if len(exp.Patterns) == 0 || len(exp.Responses) == 0 {
		return intents.Expansion{}, ErrEmptyExpansion
	}
	return exp, nil
}

func cleanEntries(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
