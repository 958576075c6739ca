package vibecheck

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/casualjim/vibecheck/pkg/slogx"
	"github.com/casualjim/vibecheck/pkg/verdict"
	"github.com/casualjim/vibecheck/provider"
	"github.com/casualjim/vibecheck/provider/openai"
	"github.com/fogfish/opts"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/openai/openai-go/option"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Client asks a chat model whether integers are even. It is safe for
// concurrent use; its configuration never changes after New.
type Client struct {
	cfg      Config
	provider provider.Provider
	prompt   *promptBuilder
	schema   verdict.Schema
	limiter  *rate.Limiter
	log      *slog.Logger
	now      func() time.Time

	mu    sync.Mutex
	usage provider.Usage
}

// New resolves the configuration and builds a Client. It fails with a
// *ConfigError (wrapping ErrMissingAPIKey) when no credential is available.
// No network activity happens here.
func New(options ...opts.Option[Config]) (*Client, error) {
	cfg, err := ResolveConfig(options...)
	if err != nil {
		return nil, err
	}

	prompt, err := newPromptBuilder(cfg.Vibes)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	c := &Client{
		cfg:      cfg,
		provider: cfg.Provider,
		prompt:   prompt,
		schema:   verdict.Schema{RequireVibe: cfg.Vibes},
		log:      cfg.Logger.With(slogx.LoggerName("vibecheck")),
		now:      time.Now,
	}
	if c.provider == nil {
		c.provider = newOpenAIProvider(cfg)
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(cfg.RateLimit, cfg.Burst)
	}
	return c, nil
}

func newOpenAIProvider(cfg Config) provider.Provider {
	if cfg.HTTPClient == nil {
		return openai.Shared(cfg.APIKey, cfg.BaseURL)
	}

	options := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(cfg.HTTPClient),
	}
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}
	return openai.New(options...)
}

// Config returns a copy of the resolved configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Usage returns the tokens consumed by every completion this client received.
func (c *Client) Usage() provider.Usage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usage
}

// Classify asks the model whether n is even.
//
// A reply that is not JSON is recovered by computing n % 2 locally with full
// confidence. An empty reply fails with ErrNoResponse and JSON of the wrong
// shape fails with ErrInvalidStructure. Errors from the completion service
// are returned unmodified.
func (c *Client) Classify(ctx context.Context, n int64) (Result, error) {
	log := c.log.With(slogx.RequestID(uuid.Must(uuid.NewV7())), slogx.Number(n))

	prompt, err := c.prompt.Render(n)
	if err != nil {
		return Result{}, fmt.Errorf("failed to render prompt: %w", err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Result{}, err
		}
	}

	log.DebugContext(ctx, "requesting parity verdict", slog.String("model", c.cfg.Model))
	completion, err := c.provider.ChatCompletion(ctx, provider.CompletionParams{
		Model:        c.cfg.Model,
		Instructions: systemInstructions,
		Prompt:       prompt,
		Temperature:  c.cfg.Temperature,
		MaxTokens:    c.cfg.MaxTokens,
	})
	if err != nil {
		log.DebugContext(ctx, "completion failed", slogx.Error(err))
		return Result{}, err
	}

	log.DebugContext(ctx, "completion received",
		slog.String("completion_id", completion.ID),
		slog.String("finish_reason", completion.FinishReason),
		slog.Int64("total_tokens", completion.Usage.TotalTokens),
	)
	c.mu.Lock()
	c.usage.Add(completion.Usage)
	c.mu.Unlock()

	if completion.Content == "" {
		return Result{}, ErrNoResponse
	}

	switch out := verdict.Decode(completion.Content, c.schema).(type) {
	case verdict.Ok:
		return c.fromReply(n, out.Reply), nil
	case verdict.SyntaxInvalid:
		log.WarnContext(ctx, "model reply is not JSON, computing parity locally", slogx.Truncated("content", out.Raw, 200))
		return c.fallback(n), nil
	case verdict.StructureInvalid:
		log.DebugContext(ctx, "model reply has the wrong shape", slogx.Error(out))
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidStructure, out)
	default:
		// This should never occur, if it does definitely raise an issue.
		panic(fmt.Sprintf("invalid verdict outcome: %T", out))
	}
}

// ClassifyValue validates that v holds an integer (see ToInteger) and then
// classifies it. Invalid input fails with ErrInvalidInput before any request.
func (c *Client) ClassifyValue(ctx context.Context, v any) (Result, error) {
	n, err := ToInteger(v)
	if err != nil {
		return Result{}, err
	}
	return c.Classify(ctx, n)
}

// ClassifyMany classifies every number concurrently and returns the results
// in input order. It is all or nothing: the first failure cancels the
// remaining requests and is returned without partial results. Requests are
// unbounded unless the client was built with a Concurrency cap.
func (c *Client) ClassifyMany(ctx context.Context, numbers []int64) ([]Result, error) {
	results := make([]Result, len(numbers))

	g, gctx := errgroup.WithContext(ctx)
	if c.cfg.Concurrency > 0 {
		g.SetLimit(c.cfg.Concurrency)
	}
	for i, n := range numbers {
		g.Go(func() error {
			res, err := c.Classify(gctx, n)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Check builds a short-lived client from options and classifies a single number.
func Check(ctx context.Context, n int64, options ...opts.Option[Config]) (Result, error) {
	c, err := New(options...)
	if err != nil {
		return Result{}, err
	}
	return c.Classify(ctx, n)
}

func (c *Client) fromReply(n int64, r verdict.Reply) Result {
	return Result{
		Number:     n,
		IsEven:     r.IsEven,
		Confidence: clamp01(r.Confidence),
		Reasoning:  r.Reasoning,
		Vibe:       r.Vibe,
		Source:     SourceModel,
		CheckedAt:  strfmt.DateTime(c.now()),
	}
}

func (c *Client) fallback(n int64) Result {
	even := n%2 == 0
	res := Result{
		Number:     n,
		IsEven:     even,
		Confidence: 1.0,
		Reasoning:  fmt.Sprintf("Mathematical calculation: %d %% 2 = %d", n, n%2),
		Source:     SourceFallback,
		CheckedAt:  strfmt.DateTime(c.now()),
	}
	if c.cfg.Vibes {
		res.Vibe = fmt.Sprintf("The AI was feeling mysterious, but math says this number is %s ⚡", parityWord(even))
	}
	return res
}
