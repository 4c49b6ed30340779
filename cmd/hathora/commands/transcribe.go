package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hathora/models-sdk/pkg/hathora"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe speech to text",
	Long: `Transcribe an audio recording to text with the Parakeet model.

Use --start and --end to transcribe only a segment of the recording.

Examples:
  hathora -c myctx transcribe recording.wav
  hathora -c myctx transcribe recording.wav --start 10 --end 30
  hathora -c myctx transcribe recording.wav --json | jq -r '.text'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		cliCtx, err := getContext()
		if err != nil {
			return err
		}

		var params []hathora.Param
		if cmd.Flags().Changed("start") {
			start, _ := cmd.Flags().GetFloat64("start")
			params = append(params, hathora.StartTime(start))
		}
		if cmd.Flags().Changed("end") {
			end, _ := cmd.Flags().GetFloat64("end")
			params = append(params, hathora.EndTime(end))
		}

		model, _ := cmd.Flags().GetString("model")

		printVerbose("Model: %s", model)
		printVerbose("File: %s", path)

		client := createClient(cliCtx)

		reqCtx, cancel := context.WithTimeout(context.Background(), 300*time.Second)
		defer cancel()

		resp, err := client.Transcription.Transcribe(reqCtx, model, hathora.AudioPath(path), params...)
		if err != nil {
			return fmt.Errorf("transcription failed: %w", err)
		}

		result := map[string]any{
			"text": resp.Text,
		}
		for k, v := range resp.Metadata {
			result[k] = v
		}

		return outputResult(result, getOutputFile(), isJSONOutput())
	},
}

func init() {
	transcribeCmd.Flags().String("model", hathora.ModelParakeet, "transcription model")
	transcribeCmd.Flags().Float64("start", 0, "segment start time in seconds")
	transcribeCmd.Flags().Float64("end", 0, "segment end time in seconds")
}
