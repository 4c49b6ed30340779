package hathora

import (
	"context"
	"fmt"
)

// ChatService provides LLM chat completion operations.
type ChatService struct {
	client *Client
}

func newChatService(client *Client) *ChatService {
	return &ChatService{client: client}
}

// Complete creates a chat completion for a conversation.
//
// The message list must be non-empty and every message needs a role;
// malformed conversations fail with *ValidationError before any network
// call.
//
// Example:
//
//	resp, err := client.Chat.Complete(ctx, hathora.ModelQwen,
//	    []hathora.ChatMessage{
//	        hathora.SystemMessage("You are a concise assistant."),
//	        hathora.UserMessage("What is AI?"),
//	    },
//	    hathora.MaxTokens(200),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Content())
func (s *ChatService) Complete(ctx context.Context, model string, messages []ChatMessage, params ...Param) (*ChatResponse, error) {
	spec, err := lookupModel(CapabilityChat, model)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, validationErrorf("chat requires at least one message")
	}
	for i, msg := range messages {
		if msg.Role == "" {
			return nil, validationErrorf("message %d has no role (expected %q, %q, or %q)",
				i, RoleSystem, RoleUser, RoleAssistant)
		}
	}
	vals, err := resolveParams(spec, params)
	if err != nil {
		return nil, err
	}

	body := map[string]any{"messages": messages}
	for name, v := range vals {
		// A false stream flag is the same as no flag; leave it out.
		if name == "stream" {
			if enabled, ok := v.(bool); !ok || !enabled {
				continue
			}
		}
		body[name] = v
	}

	result, err := s.client.http.postJSON(ctx, s.client.endpointURL(spec), nil, body)
	if err != nil {
		return nil, err
	}
	if !result.isJSON() {
		return nil, &Error{
			StatusCode: result.status,
			Message:    fmt.Sprintf("unexpected response format from %s model", model),
		}
	}
	return &ChatResponse{raw: result.json}, nil
}

// Ask sends a single user prompt and returns the completion.
//
// Example:
//
//	resp, err := client.Chat.Ask(ctx, hathora.ModelQwen, "What is Go?")
func (s *ChatService) Ask(ctx context.Context, model, prompt string, params ...Param) (*ChatResponse, error) {
	return s.Complete(ctx, model, []ChatMessage{UserMessage(prompt)}, params...)
}
