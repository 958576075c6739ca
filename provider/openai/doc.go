/*
Package openai implements the provider.Provider interface for OpenAI-compatible
chat-completion endpoints using the official openai-go SDK.

Every request carries exactly two turns: the system instructions and the user
prompt. Only the first choice of the response is read.

# Construction

A provider is built from SDK request options:

	p := openai.New(
		option.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
		option.WithBaseURL("https://example.internal/v1/"),
	)

Shared returns a cached provider per endpoint and credential, which is what the
parity oracle uses unless a custom HTTP client is configured:

	p := openai.Shared(apiKey, "")

# Errors

Transport, authentication and API errors from the SDK are returned as-is; the
SDK applies its own retry policy. A response without choices is not an error:
the returned Completion simply has empty Content.

# Thread Safety

Providers are safe for concurrent use across goroutines.
*/
package openai
