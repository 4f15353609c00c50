package llm

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadLocalModel_Unavailable(t *testing.T) {
	f, ts := newFakeAPI(t, "")
	f.fail(http.StatusServiceUnavailable, "loading model")

	_, err := LoadLocalModel(context.Background(), LocalConfig{BaseURL: ts.URL + "/v1"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLocalClient_NilModelIsUnavailable(t *testing.T) {
	c := NewLocalClient(nil, Sampling{})
	if c.NeedsCredential() {
		t.Fatalf("local backend must not need a credential")
	}
	if _, err := c.Explain(context.Background(), loveVerse, Params{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestLocalClient_StripsEchoedPrompt(t *testing.T) {
	for _, echo := range []bool{true, false} {
		f, ts := newFakeAPI(t, " Love waits. A mother waiting up for her child shows it.")
		// the fake echoes whenever asked, and always when forced
		f.echo = !echo
		m, err := LoadLocalModel(context.Background(), LocalConfig{BaseURL: ts.URL + "/v1", Model: "mistral", Echo: echo})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c := NewLocalClient(m, Sampling{})

		out, err := c.Explain(context.Background(), loveVerse, Params{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prompt := InstructPrompt(loveVerse)
		if strings.HasPrefix(out, prompt) || strings.Contains(out, "[INST]") {
			t.Fatalf("echo=%v: prompt leaked into explanation: %q", echo, out)
		}
		if out != "Love waits. A mother waiting up for her child shows it." {
			t.Fatalf("echo=%v: unexpected explanation %q", echo, out)
		}

		body := f.lastCompletion()
		if body["prompt"] != prompt {
			t.Fatalf("expected instruct prompt, got %v", body["prompt"])
		}
		if body["max_tokens"] != float64(350) {
			t.Fatalf("expected max_tokens 350, got %v", body["max_tokens"])
		}
		if body["model"] != "mistral" {
			t.Fatalf("expected model mistral, got %v", body["model"])
		}
	}
}

func TestLocalClient_ConcurrentRequestsShareModel(t *testing.T) {
	_, ts := newFakeAPI(t, "Shared answer.")
	m, err := LoadLocalModel(context.Background(), LocalConfig{BaseURL: ts.URL + "/v1", Model: "mistral"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewLocalClient(m, Sampling{})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Explain(context.Background(), loveVerse, Params{}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLocalClient_ZeroTemperature(t *testing.T) {
	f, ts := newFakeAPI(t, "Answer.")
	m, err := LoadLocalModel(context.Background(), LocalConfig{BaseURL: ts.URL + "/v1", Model: "mistral"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewLocalClient(m, Sampling{Temperature: Float32(0)})
	if _, err := c.Explain(context.Background(), loveVerse, Params{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := f.lastCompletion()
	temp, ok := body["temperature"].(float64)
	if !ok || temp <= 0 || temp > 1e-30 {
		t.Fatalf("expected near zero temperature on the wire, got %v", body["temperature"])
	}
	if body["top_p"] != 0.95 {
		t.Fatalf("expected default top_p 0.95, got %v", body["top_p"])
	}
}

func TestStripEcho(t *testing.T) {
	prompt := InstructPrompt("v")
	cases := map[string]string{
		prompt + " answer ":      "answer",
		"answer":                 "answer",
		prompt + prompt + "text": "text",
		"  ":                     "",
	}
	for in, want := range cases {
		if got := stripEcho(prompt, in); got != want {
			t.Fatalf("stripEcho(%q) = %q, want %q", in, got, want)
		}
	}
}
