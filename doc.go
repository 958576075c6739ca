/*
Package vibecheck asks a large language model whether an integer is even or odd.

The model answers with a boolean verdict, a confidence score and free-text
reasoning. When the model's reply cannot be parsed as JSON, parity is computed
locally (n % 2) and reported with full confidence. It is a demonstration of
delegating a trivial computation to a generative model, with arithmetic as the
safety net.

# Basic Usage

	c, err := vibecheck.New(
		vibecheck.Model("gpt-4o-mini"),
		vibecheck.Temperature(0.7),
	)
	if err != nil {
		// no API key: neither the APIKey option nor OPENAI_API_KEY was set
		return err
	}

	res, err := c.Classify(ctx, 42)
	if err != nil {
		return err
	}
	fmt.Println(res.IsEven, res.Confidence, res.Reasoning)

For a single call there is Check, which builds a short-lived client:

	res, err := vibecheck.Check(ctx, 7, vibecheck.APIKey(key))

# Outcomes

Every call ends in exactly one of:

  - a Result from the model (Source == SourceModel). IsEven is whatever the
    model asserted and is not re-verified. Confidence is clamped to [0, 1].
  - a Result from the fallback (Source == SourceFallback) when the reply was
    not JSON.
  - ErrNoResponse when the completion carried no text.
  - ErrInvalidStructure when the reply was JSON of the wrong shape. This is
    never recovered by the fallback.
  - the completion service's own error, unmodified. No retries are added on
    top of the SDK's.

ClassifyValue additionally rejects anything that is not an integer with
ErrInvalidInput before a request is made.

# Batches

ClassifyMany starts one request per number and returns results in input
order. It is all or nothing: any failure fails the whole batch. There is no
limit on in-flight requests unless Concurrency is set; RateLimit paces every
request the client makes.

# Vibes

Vibes(true) asks the model for an extra decorative "vibe" string and makes it
a required field of the reply.
*/
package vibecheck
