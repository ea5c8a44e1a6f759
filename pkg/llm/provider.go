package llm

import "context"

// Message is a chat turn in a provider-agnostic shape.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Role constants shared by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Options carries optional completion parameters.
type Options struct {
	Temperature    float64
	MaxTokens      int
	Model          string // overrides the provider default
	TemperatureSet bool
}

// Option mutates Options.
type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
		o.TemperatureSet = true
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the contract every LLM backend satisfies.
type LLMProvider interface {
	// Chat sends a full message history and returns the completion text.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate wraps a single prompt as a one-turn chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
