package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hathora/models-sdk/pkg/hathora"
)

var chatCmd = &cobra.Command{
	Use:   "chat [prompt]",
	Short: "Chat completion service",
	Long: `Chat completion with hosted LLMs.

A single prompt can be passed as an argument, or a full conversation
as a request file.

Example request file (chat.yaml):
  messages:
    - role: system
      content: You are a helpful assistant.
    - role: user
      content: What is the capital of France?
  max_tokens: 500
  temperature: 0.7

Examples:
  hathora -c myctx chat "What is the capital of France?"
  hathora -c myctx chat -f chat.yaml --json | jq -r '.choices[0].message.content'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cliCtx, err := getContext()
		if err != nil {
			return err
		}

		var req chatRequest
		if path := getInputFile(); path != "" {
			if err := loadRequest(path, &req); err != nil {
				return err
			}
		}
		if len(args) > 0 {
			req.Messages = append(req.Messages, hathora.UserMessage(args[0]))
		}
		if len(req.Messages) == 0 {
			return fmt.Errorf("prompt is required, pass it as an argument or in the request file")
		}

		var params []hathora.Param
		if req.MaxTokens > 0 {
			params = append(params, hathora.MaxTokens(req.MaxTokens))
		}
		if req.Temperature != 0 {
			params = append(params, hathora.Temperature(req.Temperature))
		}
		if req.TopP != 0 {
			params = append(params, hathora.TopP(req.TopP))
		}
		if cmd.Flags().Changed("max-tokens") {
			n, _ := cmd.Flags().GetInt("max-tokens")
			params = append(params, hathora.MaxTokens(n))
		}
		if cmd.Flags().Changed("temperature") {
			t, _ := cmd.Flags().GetFloat64("temperature")
			params = append(params, hathora.Temperature(t))
		}

		model, _ := cmd.Flags().GetString("model")

		printVerbose("Model: %s", model)
		printVerbose("Messages: %d", len(req.Messages))

		client := createClient(cliCtx)

		reqCtx, cancel := context.WithTimeout(context.Background(), 300*time.Second)
		defer cancel()

		resp, err := client.Chat.Complete(reqCtx, model, req.Messages, params...)
		if err != nil {
			return fmt.Errorf("chat completion failed: %w", err)
		}

		if isJSONOutput() || getOutputFile() != "" {
			return outputResult(resp.Raw(), getOutputFile(), isJSONOutput())
		}

		fmt.Println(resp.Content())
		return nil
	},
}

// chatRequest is the request file shape for the chat command.
type chatRequest struct {
	Messages    []hathora.ChatMessage `json:"messages" yaml:"messages"`
	MaxTokens   int                   `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
	Temperature float64               `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	TopP        float64               `json:"top_p,omitempty" yaml:"top_p,omitempty"`
}

func init() {
	chatCmd.Flags().String("model", hathora.ModelQwen, "chat model")
	chatCmd.Flags().Int("max-tokens", 0, "maximum tokens to generate")
	chatCmd.Flags().Float64("temperature", 0, "sampling temperature")
}
