package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/brightforge/agency-site-backend/config"
)

const chatSystemPrompt = "You are the assistant on a digital agency's website. " +
	"Answer questions about the agency's services, projects, and how to get in touch. " +
	"Keep answers short and friendly."

// Completer answers a single chat message. The production implementation
// relays to an LLM provider; tests swap in a stub.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, message string) (string, error)
}

type OpenAICompleter struct {
	llm   *openai.LLM
	model string
}

// NewOpenAICompleter builds the chat backend when OPENAI_API_KEY is set;
// otherwise the endpoint degrades to 503.
func NewOpenAICompleter(c map[string]string) *OpenAICompleter {
	apiKey := config.GetString(c, "OPENAI_API_KEY", "")
	if apiKey == "" {
		log.Warn().Msg("OPENAI_API_KEY not set, chat disabled")
		return &OpenAICompleter{}
	}

	model := config.GetString(c, "OPENAI_MODEL", "gpt-4o-mini")
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize chat backend, chat disabled")
		return &OpenAICompleter{}
	}

	return &OpenAICompleter{llm: llm, model: model}
}

func (c *OpenAICompleter) Configured() bool {
	return c.llm != nil
}

func (c *OpenAICompleter) Complete(ctx context.Context, message string) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, c.llm,
		chatSystemPrompt+"\n\nVisitor: "+message,
		llms.WithMaxTokens(512),
	)
}
