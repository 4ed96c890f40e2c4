// File path: internal/llm/llm.go

// Package llm selects the language-model provider from the environment.
package llm

import (
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/neoenergia/neoview/internal/common"
	"github.com/neoenergia/neoview/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

var (
	ErrRateLimited         = providers.ErrRateLimited
	ErrQuotaExceeded       = providers.ErrQuotaExceeded
	ErrTimeout             = providers.ErrTimeout
	ErrUpstreamUnavailable = providers.ErrUpstreamUnavailable
)

// NewProvider returns the OpenAI provider when OPENAI_API_KEY is set and the
// offline local provider otherwise.
func NewProvider() Provider {
	logger := common.Logger()
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		logger.Warn("llm: OPENAI_API_KEY not set; falling back to local provider")
		return providers.NewLocalProvider()
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if timeoutStr := strings.TrimSpace(os.Getenv("OPENAI_HTTP_TIMEOUT")); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			logger.Warn("llm: invalid OPENAI_HTTP_TIMEOUT, using default", "value", timeoutStr, "error", err)
		} else {
			logger.Info("llm: configuring OpenAI client with custom HTTP timeout", "timeout", timeout)
			opts = append(opts, option.WithRequestTimeout(timeout))
		}
	}
	if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
		logger.Info("llm: configuring OpenAI client with custom endpoint", "endpoint", endpoint)
		opts = append(opts, option.WithBaseURL(endpoint))
	}
	client := openai.NewClient(opts...)
	logger.Info("llm: OpenAI provider selected", "model", os.Getenv("OPENAI_MODEL"))
	return providers.NewOpenAIProvider(client, os.Getenv("OPENAI_MODEL"))
}
