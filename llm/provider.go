package llm

import (
	"context"
	"math"
	"net/http"

	"github.com/pkg/errors"
)

const (
	BackendLocal  = "local"
	BackendOpenAI = "openai"
	BackendRouter = "openrouter"
)

// ErrUnavailable means the backend (model server, library) cannot be reached
// or was never loaded.
var ErrUnavailable = errors.New("explanation backend unavailable")

// UpstreamError carries the error text reported by a remote model call.
type UpstreamError struct {
	Detail string
}

func (e *UpstreamError) Error() string { return "upstream model error: " + e.Detail }

// Params are the per request inputs collected from the user.
type Params struct {
	APIKey string
	Model  string
}

// Sampling holds decoding parameters. A nil Temperature and zero TopP or
// MaxTokens fall back to the backend's defaults. An explicit zero
// temperature turns sampling off.
type Sampling struct {
	Temperature *float32
	TopP        float32
	MaxTokens   int
}

// Float32 returns a pointer to v, for Sampling.Temperature.
func Float32(v float32) *float32 { return &v }

// temperature is the value put on the wire. go-openai drops a zero
// temperature (omitempty), so zero is sent as the smallest positive float.
func (s Sampling) temperature() float32 {
	if s.Temperature == nil {
		return 0
	}
	if *s.Temperature == 0 {
		return math.SmallestNonzeroFloat32
	}
	return *s.Temperature
}

func (s Sampling) withDefaults(d Sampling) Sampling {
	if s.Temperature == nil {
		s.Temperature = d.Temperature
	}
	if s.TopP == 0 {
		s.TopP = d.TopP
	}
	if s.MaxTokens == 0 {
		s.MaxTokens = d.MaxTokens
	}
	return s
}

// Provider produces an explanation for a verse.
type Provider interface {
	Name() string
	// NeedsCredential reports whether Explain requires Params.APIKey.
	NeedsCredential() bool
	// Models lists the selectable model ids. Empty means the model is fixed.
	Models() []string
	Explain(ctx context.Context, verse string, p Params) (string, error)
}

// Config selects and configures one backend.
type Config struct {
	Backend string

	OpenAIBaseURL string
	OpenAIModel   string

	RouterBaseURL string
	RouterModels  []string
	RouterReferer string
	RouterTitle   string

	Sampling   Sampling
	HTTPClient *http.Client
}

// New builds the provider named by cfg.Backend. local is only used by the
// local backend and may be nil otherwise.
func New(cfg Config, local *LocalModel) (Provider, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalClient(local, cfg.Sampling), nil
	case BackendOpenAI, "":
		return NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.Sampling, cfg.HTTPClient), nil
	case BackendRouter:
		return NewRouterClient(cfg.RouterBaseURL, cfg.RouterModels, cfg.RouterReferer, cfg.RouterTitle, cfg.Sampling, cfg.HTTPClient)
	default:
		return nil, errors.Errorf("unknown llm backend %q", cfg.Backend)
	}
}
