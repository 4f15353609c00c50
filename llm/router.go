package llm

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const DefaultRouterBaseURL = "https://openrouter.ai/api/v1"

// DefaultRouterModels is the model list offered when none is configured.
var DefaultRouterModels = []string{
	"mistralai/mistral-7b-instruct",
	"meta-llama/llama-3-8b-instruct",
	"google/gemma-7b-it",
	"openai/gpt-3.5-turbo",
}

// RouterClient explains verses through an OpenAI compatible routing service
// where the caller picks the model from a fixed list.
type RouterClient struct {
	BaseURL            string
	SystemInstructions string
	Sampling           Sampling

	models     []string
	httpClient *http.Client
}

func NewRouterClient(baseURL string, models []string, referer, title string, sampling Sampling, httpClient *http.Client) (*RouterClient, error) {
	if baseURL == "" {
		baseURL = DefaultRouterBaseURL
	}
	if len(models) == 0 {
		models = DefaultRouterModels
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	headers := map[string]string{}
	if referer != "" {
		headers["HTTP-Referer"] = referer
	}
	if title != "" {
		headers["X-Title"] = title
	}
	withHeaders := *httpClient
	withHeaders.Transport = &headerTransport{base: base, headers: headers}

	return &RouterClient{
		BaseURL:            baseURL,
		SystemInstructions: chatSystemInstructions,
		Sampling:           sampling.withDefaults(chatDefaults),
		models:             append([]string(nil), models...),
		httpClient:         &withHeaders,
	}, nil
}

func (c *RouterClient) Name() string { return BackendRouter }

func (c *RouterClient) NeedsCredential() bool { return true }

func (c *RouterClient) Models() []string { return append([]string(nil), c.models...) }

// Supports reports whether model is one of the selectable ids.
func (c *RouterClient) Supports(model string) bool {
	for _, m := range c.models {
		if m == model {
			return true
		}
	}
	return false
}

func (c *RouterClient) Explain(ctx context.Context, verse string, p Params) (string, error) {
	if p.APIKey == "" {
		return "", errors.New("api key is required")
	}
	if !c.Supports(p.Model) {
		return "", errors.Errorf("model %q is not offered by the router", p.Model)
	}
	cfg := openai.DefaultConfig(p.APIKey)
	cfg.BaseURL = c.BaseURL
	cfg.HTTPClient = c.httpClient
	return chatComplete(ctx, openai.NewClientWithConfig(cfg), p.Model, c.SystemInstructions, verse, c.Sampling)
}

type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 {
		return t.base.RoundTrip(r)
	}
	r = r.Clone(r.Context())
	for k, v := range t.headers {
		r.Header.Set(k, v)
	}
	return t.base.RoundTrip(r)
}
