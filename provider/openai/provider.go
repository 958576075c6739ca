package openai

import (
	"context"

	"github.com/casualjim/vibecheck/provider"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var _ provider.Provider = (*Provider)(nil)

type Provider struct {
	client *openai.Client
}

func New(options ...option.RequestOption) *Provider {
	client := openai.NewClient(options...)
	return &Provider{
		client: client,
	}
}

func (p *Provider) buildRequest(params *provider.CompletionParams) openai.ChatCompletionNewParams {
	oaiParams := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(params.Instructions),
			openai.UserMessage(params.Prompt),
		}),
		Model:       openai.F(openai.ChatModel(params.Model)),
		N:           openai.Int(1),
		Temperature: openai.Float(params.Temperature),
	}
	if params.MaxTokens > 0 {
		oaiParams.MaxTokens = openai.Int(params.MaxTokens)
	}
	return oaiParams
}

func (p *Provider) ChatCompletion(ctx context.Context, params provider.CompletionParams) (provider.Completion, error) {
	chat, err := p.client.Chat.Completions.New(ctx, p.buildRequest(&params))
	if err != nil {
		return provider.Completion{}, err
	}
	return completionFromOpenAI(chat), nil
}

func completionFromOpenAI(chat *openai.ChatCompletion) provider.Completion {
	result := provider.Completion{
		ID:    chat.ID,
		Model: chat.Model,
		Usage: provider.Usage{
			PromptTokens:     chat.Usage.PromptTokens,
			CompletionTokens: chat.Usage.CompletionTokens,
			TotalTokens:      chat.Usage.TotalTokens,
		},
	}
	if len(chat.Choices) == 0 {
		return result
	}

	choice := chat.Choices[0]
	result.Content = choice.Message.Content
	result.FinishReason = string(choice.FinishReason)
	return result
}
