package llm

import (
	"context"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const (
	DefaultLocalURL   = "http://127.0.0.1:8080/v1"
	DefaultLocalModel = "mistralai/Mistral-7B-Instruct-v0.1"
)

var localDefaults = Sampling{Temperature: Float32(0.7), TopP: 0.95, MaxTokens: 350}

// LocalConfig points at a locally hosted inference server speaking the
// OpenAI completions API (llama.cpp's llama-server, vLLM, ...).
type LocalConfig struct {
	BaseURL string
	Model   string
	// Echo asks the server to return the prompt followed by the
	// continuation.
	Echo       bool
	HTTPClient *http.Client
}

// LocalModel is the process wide handle on a loaded local model. Build it
// once at start up and share it between requests.
type LocalModel struct {
	client *openai.Client
	name   string
	echo   bool

	// the server holds a single model context; generations are serialized
	mu sync.Mutex
}

// LoadLocalModel connects to the inference server and checks it answers.
func LoadLocalModel(ctx context.Context, cfg LocalConfig) (*LocalModel, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultLocalURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLocalModel
	}
	oc := openai.DefaultConfig("no-key")
	oc.BaseURL = cfg.BaseURL
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}
	client := openai.NewClientWithConfig(oc)

	if _, err := client.ListModels(ctx); err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "local model server at %s: %v", cfg.BaseURL, err)
	}
	log.Printf("🧠 Local model %s ready at %s", cfg.Model, cfg.BaseURL)

	return &LocalModel{client: client, name: cfg.Model, echo: cfg.Echo}, nil
}

// Name returns the model id sent with each completion.
func (m *LocalModel) Name() string { return m.name }

// Generate returns the raw completion text and whether it starts with the
// echoed prompt.
func (m *LocalModel) Generate(ctx context.Context, prompt string, s Sampling) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp, err := m.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       m.name,
		Prompt:      prompt,
		MaxTokens:   s.MaxTokens,
		Temperature: s.temperature(),
		TopP:        s.TopP,
		Echo:        m.echo,
	})
	if err != nil {
		return "", false, err
	}
	if len(resp.Choices) == 0 {
		return "", false, errors.New("completion contained no choices")
	}
	return resp.Choices[0].Text, m.echo, nil
}

// LocalClient explains verses with the local model. It needs no credential.
type LocalClient struct {
	Model    *LocalModel
	Sampling Sampling
}

func NewLocalClient(model *LocalModel, sampling Sampling) *LocalClient {
	return &LocalClient{Model: model, Sampling: sampling.withDefaults(localDefaults)}
}

func (c *LocalClient) Name() string { return BackendLocal }

func (c *LocalClient) NeedsCredential() bool { return false }

func (c *LocalClient) Models() []string { return nil }

func (c *LocalClient) Explain(ctx context.Context, verse string, _ Params) (string, error) {
	if c.Model == nil {
		return "", ErrUnavailable
	}
	prompt := InstructPrompt(verse)
	text, echoed, err := c.Model.Generate(ctx, prompt, c.Sampling)
	if err != nil {
		log.Printf("❌ Local generation failed: %v", err)
		return "", &UpstreamError{Detail: err.Error()}
	}
	if echoed {
		text = strings.TrimPrefix(text, prompt)
	}
	// some servers echo regardless of the flag
	return stripEcho(prompt, text), nil
}
