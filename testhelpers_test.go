package vibecheck

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"testing"

	"github.com/casualjim/vibecheck/provider"
	"github.com/fogfish/opts"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu      sync.Mutex
	calls   []provider.CompletionParams
	respond func(ctx context.Context, params provider.CompletionParams) (provider.Completion, error)
}

func (f *fakeProvider) ChatCompletion(ctx context.Context, params provider.CompletionParams) (provider.Completion, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()
	return f.respond(ctx, params)
}

func (f *fakeProvider) Calls() []provider.CompletionParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]provider.CompletionParams(nil), f.calls...)
}

// replying returns a provider that always answers with content.
func replying(content string) *fakeProvider {
	return &fakeProvider{
		respond: func(context.Context, provider.CompletionParams) (provider.Completion, error) {
			return provider.Completion{ID: "chatcmpl-test", Content: content}, nil
		},
	}
}

var promptNumber = regexp.MustCompile(`the number (-?\d+) is even or odd`)

// numberFromPrompt recovers the integer embedded in a rendered prompt.
func numberFromPrompt(t *testing.T, prompt string) int64 {
	t.Helper()
	m := promptNumber.FindStringSubmatch(prompt)
	require.Len(t, m, 2, "prompt does not embed a number: %s", prompt)
	n, err := strconv.ParseInt(m[1], 10, 64)
	require.NoError(t, err)
	return n
}

// honestReply is what a well-behaved model would say about n.
func honestReply(n int64) string {
	return fmt.Sprintf(`{"isEven": %t, "confidence": 0.9, "reasoning": "%d modulo 2 is %d"}`, n%2 == 0, n, n%2)
}

func newTestClient(t *testing.T, p provider.Provider, extra ...opts.Option[Config]) *Client {
	t.Helper()
	options := []opts.Option[Config]{APIKey("sk-test"), Provider(p)}
	c, err := New(append(options, extra...)...)
	require.NoError(t, err)
	return c
}
