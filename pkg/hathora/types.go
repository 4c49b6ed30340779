package hathora

import (
	"io"
	"os"
)

// AudioResponse holds generated audio returned by a synthesis model.
// It is immutable after construction.
type AudioResponse struct {
	content []byte

	// ContentType is the MIME type reported by the server, or a value
	// inferred from the byte signature when the server sent none.
	ContentType string
}

// Content returns the raw audio bytes.
func (r *AudioResponse) Content() []byte {
	return r.content
}

// Save writes the audio bytes to a file, verbatim.
func (r *AudioResponse) Save(path string) error {
	return os.WriteFile(path, r.content, 0644)
}

// WriteTo writes the audio bytes to w.
func (r *AudioResponse) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.content)
	return int64(n), err
}

// Len returns the audio size in bytes.
func (r *AudioResponse) Len() int {
	return len(r.content)
}

// TranscriptionResponse holds the result of a transcription call.
type TranscriptionResponse struct {
	// Text is the transcribed text.
	Text string

	// Metadata holds every response field other than the text itself
	// (confidence, timing, language, whatever the model reports).
	Metadata map[string]any
}

func (r *TranscriptionResponse) String() string {
	return r.Text
}

// Message roles for chat completion.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one message in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// UserMessage builds a user-role message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

// AssistantMessage builds an assistant-role message.
func AssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content}
}

// Usage contains token accounting for a chat completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse wraps the raw chat completion response. Every accessor
// tolerates absent fields and returns a zero value instead of failing.
type ChatResponse struct {
	raw map[string]any
}

// Raw returns the parsed response body.
func (r *ChatResponse) Raw() map[string]any {
	return r.raw
}

// Content returns the first choice's message content, or "".
func (r *ChatResponse) Content() string {
	return r.Message().Content
}

// Message returns the first choice's message, or a zero message.
func (r *ChatResponse) Message() ChatMessage {
	choices, ok := r.raw["choices"].([]any)
	if !ok || len(choices) == 0 {
		return ChatMessage{}
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return ChatMessage{}
	}
	msg, ok := choice["message"].(map[string]any)
	if !ok {
		return ChatMessage{}
	}
	role, _ := msg["role"].(string)
	content, _ := msg["content"].(string)
	return ChatMessage{Role: role, Content: content}
}

// Usage returns token usage, with ok=false when the server omitted it.
func (r *ChatResponse) Usage() (Usage, bool) {
	u, ok := r.raw["usage"].(map[string]any)
	if !ok {
		return Usage{}, false
	}
	return Usage{
		PromptTokens:     jsonInt(u["prompt_tokens"]),
		CompletionTokens: jsonInt(u["completion_tokens"]),
		TotalTokens:      jsonInt(u["total_tokens"]),
	}, true
}

// Model returns the model identifier reported by the server, or "".
func (r *ChatResponse) Model() string {
	m, _ := r.raw["model"].(string)
	return m
}

func (r *ChatResponse) String() string {
	return r.Content()
}

// jsonInt reads a numeric value decoded from JSON into an any.
func jsonInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}
