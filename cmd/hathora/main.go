// Package main provides the Hathora models CLI tool.
//
// Usage:
//
//	hathora [flags] <service> <command> [args]
//
// Services:
//
//	speech      - Text-to-speech synthesis
//	transcribe  - Speech-to-text transcription
//	chat        - LLM chat completion
//	models      - Model discovery
//	config      - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.hathora/models/
//	Use 'hathora config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/hathora/models-sdk/cmd/hathora/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
