// File path: internal/llm/providers/openai_client.go
package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go/v2"
)

const defaultModel = "gpt-4o"

// OpenAIProvider backs chat with the OpenAI completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

var _ Provider = (*OpenAIProvider)(nil)

func NewOpenAIProvider(client openai.Client, model string) *OpenAIProvider {
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &OpenAIProvider{client: client, model: model}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("openai: no messages provided")
	}
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, msg := range messages {
		switch strings.ToLower(msg.Role) {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		case "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUpstreamUnavailable)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func classifyError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
}
