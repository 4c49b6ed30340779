package hathora_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hathora/models-sdk/pkg/hathora"
)

func newChatServer(t *testing.T, gotPath *string, gotBody *map[string]any, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
}

const chatReply = `{
	"model": "Qwen/Qwen3-30B-A3B",
	"choices": [{"message": {"role": "assistant", "content": "AI is software."}}],
	"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
}`

func TestChatAsk(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := newChatServer(t, &gotPath, &gotBody, chatReply)
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithChatBaseURL(srv.URL))
	resp, err := client.Chat.Ask(t.Context(), hathora.ModelQwen, "What is AI?")
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/model/qwen-qwen3-30b-a3b/v1/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}

	msgs, ok := gotBody["messages"].([]any)
	if !ok || len(msgs) != 1 {
		t.Fatalf("messages = %v", gotBody["messages"])
	}
	first := msgs[0].(map[string]any)
	if first["role"] != "user" || first["content"] != "What is AI?" {
		t.Errorf("message = %v", first)
	}

	if gotBody["max_tokens"] != 1000.0 {
		t.Errorf("max_tokens = %v, want default 1000", gotBody["max_tokens"])
	}
	if gotBody["temperature"] != 0.7 {
		t.Errorf("temperature = %v, want default 0.7", gotBody["temperature"])
	}
	if _, ok := gotBody["top_p"]; ok {
		t.Error("top_p should be omitted when unset")
	}
	if _, ok := gotBody["stream"]; ok {
		t.Error("stream should be omitted when unset")
	}

	if resp.Content() != "AI is software." {
		t.Errorf("content = %q", resp.Content())
	}
	if resp.Model() != "Qwen/Qwen3-30B-A3B" {
		t.Errorf("model = %q", resp.Model())
	}
	usage, ok := resp.Usage()
	if !ok {
		t.Fatal("usage should be present")
	}
	if usage.TotalTokens != 16 || usage.PromptTokens != 12 || usage.CompletionTokens != 4 {
		t.Errorf("usage = %+v", usage)
	}
}

func TestChatParams(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := newChatServer(t, &gotPath, &gotBody, chatReply)
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithChatBaseURL(srv.URL))
	_, err := client.Chat.Complete(t.Context(), hathora.ModelQwen,
		[]hathora.ChatMessage{
			hathora.SystemMessage("Be brief."),
			hathora.UserMessage("Hello"),
		},
		hathora.MaxTokens(256),
		hathora.Temperature(0.2),
		hathora.TopP(0.9),
	)
	if err != nil {
		t.Fatal(err)
	}
	if gotBody["max_tokens"] != 256.0 || gotBody["temperature"] != 0.2 || gotBody["top_p"] != 0.9 {
		t.Errorf("body = %v", gotBody)
	}
	if msgs := gotBody["messages"].([]any); len(msgs) != 2 {
		t.Errorf("messages = %v", msgs)
	}
}

func TestChatStreamFalseOmitted(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := newChatServer(t, &gotPath, &gotBody, chatReply)
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithChatBaseURL(srv.URL))
	if _, err := client.Chat.Ask(t.Context(), hathora.ModelQwen, "hi", hathora.Stream(false)); err != nil {
		t.Fatal(err)
	}
	if _, ok := gotBody["stream"]; ok {
		t.Error("stream=false should be omitted from the request")
	}
}

func TestChatMissingUsage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := newChatServer(t, &gotPath, &gotBody,
		`{"choices": [{"message": {"role": "assistant", "content": "hi"}}]}`)
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithChatBaseURL(srv.URL))
	resp, err := client.Chat.Ask(t.Context(), hathora.ModelQwen, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := resp.Usage(); ok {
		t.Error("usage should report absent")
	}
	if resp.Model() != "" {
		t.Errorf("model = %q, want empty", resp.Model())
	}
	if resp.Content() != "hi" {
		t.Errorf("content = %q", resp.Content())
	}
}

func TestChatEmptyChoices(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := newChatServer(t, &gotPath, &gotBody, `{"choices": []}`)
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithChatBaseURL(srv.URL))
	resp, err := client.Chat.Ask(t.Context(), hathora.ModelQwen, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Content() != "" {
		t.Errorf("content = %q, want empty for missing choices", resp.Content())
	}
	if msg := resp.Message(); msg != (hathora.ChatMessage{}) {
		t.Errorf("message = %v, want zero value", msg)
	}
}

func TestChatEmptyMessages(t *testing.T) {
	client := hathora.NewClient("test-key")
	_, err := client.Chat.Complete(t.Context(), hathora.ModelQwen, nil)
	if _, ok := hathora.AsValidationError(err); !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
}

func TestChatMessageWithoutRole(t *testing.T) {
	client := hathora.NewClient("test-key")
	_, err := client.Chat.Complete(t.Context(), hathora.ModelQwen,
		[]hathora.ChatMessage{{Content: "orphan"}})
	ve, ok := hathora.AsValidationError(err)
	if !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if !strings.Contains(ve.Message, "role") {
		t.Errorf("message = %q", ve.Message)
	}
}

func TestChatUnknownModel(t *testing.T) {
	client := hathora.NewClient("test-key")
	_, err := client.Chat.Ask(t.Context(), "llama", "hi")
	ve, ok := hathora.AsValidationError(err)
	if !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if !strings.Contains(ve.Message, "llama") || !strings.Contains(ve.Message, "qwen") {
		t.Errorf("message = %q", ve.Message)
	}
}

func TestChatAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := hathora.NewClient("bad-key", hathora.WithChatBaseURL(srv.URL))
	_, err := client.Chat.Ask(t.Context(), hathora.ModelQwen, "hi")
	if _, ok := hathora.AsAuthError(err); !ok {
		t.Fatalf("error = %v, want *AuthError", err)
	}
}

func TestChatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"model warming up"}}`))
	}))
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithChatBaseURL(srv.URL))
	_, err := client.Chat.Ask(t.Context(), hathora.ModelQwen, "hi")
	e, ok := hathora.AsError(err)
	if !ok {
		t.Fatalf("error = %v, want *Error", err)
	}
	if e.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d", e.StatusCode)
	}
	if e.Message != "model warming up" {
		t.Errorf("message = %q, want extracted server message", e.Message)
	}
}
