package provider

import (
	"context"
)

// Provider defines the interface for chat-completion services (e.g., OpenAI).
// Implementations handle the specifics of talking to a remote model while the
// rest of the module only deals in prompts and the text that comes back.
type Provider interface {
	ChatCompletion(context.Context, CompletionParams) (Completion, error)
}

// CompletionParams encapsulates all parameters needed for a single chat completion request.
type CompletionParams struct {
	// Model is the identifier of the remote model, e.g. "gpt-3.5-turbo"
	Model string

	// Instructions is sent as the system turn
	Instructions string

	// Prompt is sent as the user turn
	Prompt string

	// Temperature controls sampling randomness
	Temperature float64

	// MaxTokens caps the size of the generated reply
	MaxTokens int64

	// Prevents unkeyed literals
	_ struct{}
}

// Completion is the part of a chat completion response the oracle cares about.
type Completion struct {
	// ID is the identifier the service assigned to the completion
	ID string

	// Model is the model that actually served the request
	Model string

	// Content is the text of the first choice, empty when the service returned none
	Content string

	// FinishReason reports why the first choice stopped generating
	FinishReason string

	Usage Usage
}

// Usage reports the token accounting of a completion.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Add accumulates the counters of other into u.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}
