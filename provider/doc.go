// Package provider defines the contract between the parity oracle and the
// remote chat-completion service it delegates to.
//
// The oracle only ever needs one round trip: a system turn, a user turn and the
// text of the first returned choice. Provider captures exactly that so the
// transport can be swapped (a real OpenAI-compatible endpoint, or a fake in tests)
// without touching the classification logic.
//
// Example usage:
//
//	completion, err := p.ChatCompletion(ctx, provider.CompletionParams{
//	    Model:        "gpt-3.5-turbo",
//	    Instructions: "You are a helpful assistant that responds only with valid JSON objects.",
//	    Prompt:       prompt,
//	    Temperature:  0.7,
//	    MaxTokens:    500,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(completion.Content)
//
// Errors returned by a Provider are transport, authentication or service errors;
// an empty Content is not an error at this layer.
package provider
