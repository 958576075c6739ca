package openai

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/alphadose/haxmap"
	"github.com/openai/openai-go/option"
)

// DefaultModel is the model the oracle asks when none is configured.
const DefaultModel = "gpt-3.5-turbo"

var providerCache = haxmap.New[string, *Provider]()

// Shared returns a process-wide provider for the given endpoint and credential.
// Short-lived oracle clients built by the one-shot helper reuse the same SDK
// client (and its connection pool) instead of constructing a new one per call.
// An empty baseURL means the SDK default endpoint. A non-empty baseURL must end
// in a slash, otherwise the SDK drops its last path segment.
func Shared(apiKey, baseURL string) *Provider {
	p, _ := providerCache.GetOrCompute(cacheKey(apiKey, baseURL), func() *Provider {
		opts := []option.RequestOption{option.WithAPIKey(apiKey)}
		if baseURL != "" {
			opts = append(opts, option.WithBaseURL(baseURL))
		}
		return New(opts...)
	})
	return p
}

// the credential never ends up in the map key verbatim
func cacheKey(apiKey, baseURL string) string {
	sum := sha256.Sum256([]byte(baseURL + "\x00" + apiKey))
	return hex.EncodeToString(sum[:])
}
