package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeAPI is a minimal OpenAI compatible server recording what it receives.
type fakeAPI struct {
	mu       sync.Mutex
	chats    []map[string]any
	comps    []map[string]any
	headers  []http.Header
	reply    string
	status   int
	errorMsg string
	echo     bool
	calls    int
}

func newFakeAPI(t *testing.T, reply string) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{reply: reply, status: http.StatusOK}
	ts := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(ts.Close)
	return f, ts
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.headers = append(f.headers, r.Header.Clone())
	w.Header().Set("Content-Type", "application/json")

	if f.status != http.StatusOK {
		w.WriteHeader(f.status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": f.errorMsg, "type": "invalid_request_error"},
		})
		return
	}

	switch r.URL.Path {
	case "/v1/models":
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"data":   []any{map[string]any{"id": "local", "object": "model"}},
		})
	case "/v1/chat/completions":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.chats = append(f.chats, body)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"choices": []any{map[string]any{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": f.reply},
				"finish_reason": "stop",
			}},
		})
	case "/v1/completions":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.comps = append(f.comps, body)
		text := f.reply
		if echo, _ := body["echo"].(bool); echo || f.echo {
			prompt, _ := body["prompt"].(string)
			text = prompt + f.reply
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "cmpl-test",
			"object": "text_completion",
			"choices": []any{map[string]any{
				"index":         0,
				"text":          text,
				"finish_reason": "length",
			}},
		})
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) fail(status int, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.errorMsg = msg
}

func (f *fakeAPI) lastChat() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.chats) == 0 {
		return nil
	}
	return f.chats[len(f.chats)-1]
}

func (f *fakeAPI) lastCompletion() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.comps) == 0 {
		return nil
	}
	return f.comps[len(f.comps)-1]
}
