package llm

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

var chatDefaults = Sampling{Temperature: Float32(0.7), MaxTokens: 500}

// OpenAIClient explains verses with a hosted chat completion API. The API key
// is supplied per request by the caller.
type OpenAIClient struct {
	BaseURL            string
	Model              string
	SystemInstructions string
	Sampling           Sampling
	HTTPClient         *http.Client
}

func NewOpenAIClient(baseURL string, model string, sampling Sampling, httpClient *http.Client) *OpenAIClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIClient{
		BaseURL:            baseURL,
		Model:              model,
		SystemInstructions: chatSystemInstructions,
		Sampling:           sampling.withDefaults(chatDefaults),
		HTTPClient:         httpClient,
	}
}

func (c *OpenAIClient) Name() string { return BackendOpenAI }

func (c *OpenAIClient) NeedsCredential() bool { return true }

func (c *OpenAIClient) Models() []string { return nil }

func (c *OpenAIClient) Explain(ctx context.Context, verse string, p Params) (string, error) {
	if p.APIKey == "" {
		return "", errors.New("api key is required")
	}
	cfg := openai.DefaultConfig(p.APIKey)
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	if c.HTTPClient != nil {
		cfg.HTTPClient = c.HTTPClient
	}
	return chatComplete(ctx, openai.NewClientWithConfig(cfg), c.Model, c.SystemInstructions, verse, c.Sampling)
}

// chatComplete sends the persona as the system message and the verse as the
// user message and returns the first choice.
func chatComplete(ctx context.Context, client *openai.Client, model, system, verse string, s Sampling) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: ChatPrompt(verse)},
		},
		Temperature: s.temperature(),
		TopP:        s.TopP,
		MaxTokens:   s.MaxTokens,
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("❌ Chat completion with model %s failed: %v", model, err)
		return "", &UpstreamError{Detail: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Detail: "response contained no choices"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
