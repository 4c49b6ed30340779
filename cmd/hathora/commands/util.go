package commands

import (
	"time"

	"github.com/hathora/models-sdk/pkg/cli"
	"github.com/hathora/models-sdk/pkg/hathora"
)

// loadRequest loads a request from a YAML or JSON file
func loadRequest(path string, v any) error {
	return cli.LoadRequest(path, v)
}

// outputBytes outputs binary data to a file
func outputBytes(data []byte, outputPath string) error {
	return cli.OutputBytes(data, outputPath)
}

// printSuccess prints a success message
func printSuccess(format string, args ...any) {
	cli.PrintSuccess(format, args...)
}

// createClient creates a Hathora API client from context configuration.
// An empty API key falls back to the HATHORA_API_KEY environment variable.
func createClient(ctx *cli.Context) *hathora.Client {
	var opts []hathora.Option

	if ctx.ChatBaseURL != "" {
		opts = append(opts, hathora.WithChatBaseURL(ctx.ChatBaseURL))
	}
	for model, baseURL := range ctx.ModelURLs {
		opts = append(opts, hathora.WithModelURL(model, baseURL))
	}
	if ctx.Timeout > 0 {
		opts = append(opts, hathora.WithTimeout(time.Duration(ctx.Timeout)*time.Second))
	}

	return hathora.NewClient(ctx.APIKey, opts...)
}
