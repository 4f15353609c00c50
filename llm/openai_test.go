package llm

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const loveVerse = "Love is patient, love is kind. It does not envy, it does not boast, it is not proud."

func TestOpenAIClient_SendsPersonaAndVerse(t *testing.T) {
	f, ts := newFakeAPI(t, "  Love here means choosing patience. For example...  ")
	c := NewOpenAIClient(ts.URL+"/v1", "gpt-4o-mini", Sampling{}, nil)

	out, err := c.Explain(context.Background(), loveVerse, Params{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Love here means choosing patience. For example..." {
		t.Fatalf("unexpected explanation %q", out)
	}

	body := f.lastChat()
	if body["model"] != "gpt-4o-mini" {
		t.Fatalf("expected model gpt-4o-mini, got %v", body["model"])
	}
	if body["max_tokens"] != float64(500) {
		t.Fatalf("expected default max_tokens 500, got %v", body["max_tokens"])
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(msgs))
	}
	system := msgs[0].(map[string]any)
	user := msgs[1].(map[string]any)
	if system["role"] != "system" || !strings.Contains(system["content"].(string), "Bible teacher") {
		t.Fatalf("unexpected system message %v", system)
	}
	if user["role"] != "user" || !strings.Contains(user["content"].(string), loveVerse) {
		t.Fatalf("user message must embed the verse: %v", user)
	}
	if got := f.headers[0].Get("Authorization"); got != "Bearer sk-test" {
		t.Fatalf("expected bearer credential, got %q", got)
	}
}

func TestOpenAIClient_UpstreamErrorCarriesMessage(t *testing.T) {
	f, ts := newFakeAPI(t, "")
	f.fail(http.StatusUnauthorized, "Incorrect API key provided")
	c := NewOpenAIClient(ts.URL+"/v1", "", Sampling{}, nil)

	_, err := c.Explain(context.Background(), loveVerse, Params{APIKey: "sk-bad"})
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if !strings.Contains(ue.Detail, "Incorrect API key provided") {
		t.Fatalf("expected upstream message in detail, got %q", ue.Detail)
	}
}

func TestOpenAIClient_RequiresCredential(t *testing.T) {
	f, ts := newFakeAPI(t, "unused")
	c := NewOpenAIClient(ts.URL+"/v1", "", Sampling{}, nil)
	if !c.NeedsCredential() {
		t.Fatalf("hosted chat must require a credential")
	}
	if _, err := c.Explain(context.Background(), loveVerse, Params{}); err == nil {
		t.Fatalf("expected error without api key")
	}
	if f.calls != 0 {
		t.Fatalf("expected no network call, got %d", f.calls)
	}
}

func TestOpenAIClient_ZeroTemperatureIsDeterministic(t *testing.T) {
	f, ts := newFakeAPI(t, "Patience is love in action.")
	c := NewOpenAIClient(ts.URL+"/v1", "", Sampling{Temperature: Float32(0)}, nil)

	first, err := c.Explain(context.Background(), loveVerse, Params{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Explain(context.Background(), loveVerse, Params{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical explanations, got %q and %q", first, second)
	}

	temp, ok := f.lastChat()["temperature"].(float64)
	if !ok || temp <= 0 || temp > 1e-30 {
		t.Fatalf("expected near zero temperature on the wire, got %v", f.lastChat()["temperature"])
	}
}

func TestOpenAIClient_DefaultTemperature(t *testing.T) {
	f, ts := newFakeAPI(t, "ok")
	c := NewOpenAIClient(ts.URL+"/v1", "", Sampling{}, nil)

	if _, err := c.Explain(context.Background(), loveVerse, Params{APIKey: "k"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.lastChat()["temperature"]; got != 0.7 {
		t.Fatalf("expected default temperature 0.7, got %v", got)
	}
}

func TestNew_SelectsBackend(t *testing.T) {
	cases := map[string]string{
		"":            BackendOpenAI,
		BackendOpenAI: BackendOpenAI,
		BackendRouter: BackendRouter,
		BackendLocal:  BackendLocal,
	}
	for backend, want := range cases {
		p, err := New(Config{Backend: backend}, nil)
		if err != nil {
			t.Fatalf("backend %q: unexpected error: %v", backend, err)
		}
		if p.Name() != want {
			t.Fatalf("backend %q: expected %s, got %s", backend, want, p.Name())
		}
	}
	if _, err := New(Config{Backend: "gemini"}, nil); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
