package main

import (
	"fmt"

	"github.com/casualjim/vibecheck"
	"github.com/fogfish/opts"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int64
	vibes       bool
	concurrency int
	rateLimit   float64
	burst       int
	output      string
	logLevel    string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "vibecheck NUMBER [NUMBER...]",
		Short: "Ask a language model whether integers are even",
		Long: `vibecheck sends each integer to a chat model and prints its verdict,
confidence and reasoning. When the model does not answer with JSON the parity
is computed locally instead.

The API key is read from --api-key, or from OPENAI_API_KEY (a .env file in the
working directory is loaded first).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), flags.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &flags, args)
		},
	}

	f := rootCmd.Flags()
	f.StringVar(&flags.apiKey, "api-key", "", "API key (defaults to $"+vibecheck.EnvAPIKey+")")
	f.StringVarP(&flags.model, "model", "m", vibecheck.DefaultModel, "Chat model to ask")
	f.StringVar(&flags.baseURL, "base-url", "", "OpenAI-compatible endpoint, e.g. http://localhost:11434/v1")
	f.Float64VarP(&flags.temperature, "temperature", "t", vibecheck.DefaultTemperature, "Sampling temperature")
	f.Int64Var(&flags.maxTokens, "max-tokens", vibecheck.DefaultMaxTokens, "Maximum tokens in the model reply")
	f.BoolVar(&flags.vibes, "vibes", false, "Ask the model to describe the number's vibe")
	f.IntVarP(&flags.concurrency, "concurrency", "c", 0, "Maximum requests in flight (0 = unlimited)")
	f.Float64Var(&flags.rateLimit, "rate-limit", 0, "Maximum requests per second (0 = unlimited)")
	f.IntVar(&flags.burst, "burst", 1, "Burst size used with --rate-limit")
	f.StringVarP(&flags.output, "output", "o", outputText, "Output format: text, json, table or debug")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	return rootCmd
}

func (f *rootFlags) options() []opts.Option[vibecheck.Config] {
	options := []opts.Option[vibecheck.Config]{
		vibecheck.Model(f.model),
		vibecheck.Temperature(f.temperature),
		vibecheck.MaxTokens(f.maxTokens),
		vibecheck.Vibes(f.vibes),
		vibecheck.Concurrency(f.concurrency),
	}
	if f.apiKey != "" {
		options = append(options, vibecheck.APIKey(f.apiKey))
	}
	if f.baseURL != "" {
		options = append(options, vibecheck.BaseURL(f.baseURL))
	}
	if f.rateLimit > 0 {
		options = append(options, vibecheck.RateLimit(f.rateLimit, f.burst))
	}
	return options
}

func run(cmd *cobra.Command, flags *rootFlags, args []string) error {
	render, ok := renderers[flags.output]
	if !ok {
		return fmt.Errorf("unknown output format %q", flags.output)
	}

	numbers := make([]int64, len(args))
	for i, arg := range args {
		n, err := vibecheck.ParseNumber(arg)
		if err != nil {
			return err
		}
		numbers[i] = n
	}

	client, err := vibecheck.New(flags.options()...)
	if err != nil {
		return err
	}

	results, err := client.ClassifyMany(cmd.Context(), numbers)
	if err != nil {
		return err
	}

	usage := client.Usage()
	log.Info().
		Int("numbers", len(numbers)).
		Int64("prompt_tokens", usage.PromptTokens).
		Int64("completion_tokens", usage.CompletionTokens).
		Int64("total_tokens", usage.TotalTokens).
		Msg("classification finished")
	return render(cmd.OutOrStdout(), results)
}
