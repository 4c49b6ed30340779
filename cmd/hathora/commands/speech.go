package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hathora/models-sdk/pkg/hathora"
)

var speechCmd = &cobra.Command{
	Use:   "speech",
	Short: "Speech synthesis service",
	Long: `Text-to-speech synthesis.

Supports the Kokoro and ResembleAI Chatterbox models. Chatterbox can
clone a voice from a reference recording with --audio-prompt.

Example request file (speech.yaml):
  text: Hello, this is a test message.
  voice: af_bella
  speed: 1.2`,
}

// speechRequest is the request file shape for speech synthesize. It is a
// superset of the per-model parameters; only the fields the target model
// accepts are forwarded.
type speechRequest struct {
	Text         string  `json:"text" yaml:"text"`
	Voice        string  `json:"voice,omitempty" yaml:"voice,omitempty"`
	Speed        float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
	AudioPrompt  string  `json:"audio_prompt,omitempty" yaml:"audio_prompt,omitempty"`
	Exaggeration float64 `json:"exaggeration,omitempty" yaml:"exaggeration,omitempty"`
	CFGWeight    float64 `json:"cfg_weight,omitempty" yaml:"cfg_weight,omitempty"`
}

var speechSynthesizeCmd = &cobra.Command{
	Use:   "synthesize <model> [text]",
	Short: "Synthesize speech from text",
	Long: `Synthesize speech from text.

The audio output is saved to the file given with -o.

Examples:
  hathora -c myctx speech synthesize kokoro "Hello world" -o hello.wav
  hathora -c myctx speech synthesize kokoro --voice af_bella --speed 1.2 "Hi" -o hi.wav
  hathora -c myctx speech synthesize resemble -f speech.yaml -o cloned.wav
  hathora -c myctx speech synthesize resemble "Hello" --audio-prompt ref.wav -o out.wav`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := args[0]

		var req speechRequest
		if path := getInputFile(); path != "" {
			if err := loadRequest(path, &req); err != nil {
				return err
			}
		}
		if len(args) > 1 {
			req.Text = args[1]
		}
		if req.Text == "" {
			return fmt.Errorf("text is required, pass it as an argument or in the request file")
		}

		// Flags override the request file.
		if cmd.Flags().Changed("voice") {
			req.Voice, _ = cmd.Flags().GetString("voice")
		}
		if cmd.Flags().Changed("speed") {
			req.Speed, _ = cmd.Flags().GetFloat64("speed")
		}
		if cmd.Flags().Changed("audio-prompt") {
			req.AudioPrompt, _ = cmd.Flags().GetString("audio-prompt")
		}
		if cmd.Flags().Changed("exaggeration") {
			req.Exaggeration, _ = cmd.Flags().GetFloat64("exaggeration")
		}
		if cmd.Flags().Changed("cfg-weight") {
			req.CFGWeight, _ = cmd.Flags().GetFloat64("cfg-weight")
		}

		cliCtx, err := getContext()
		if err != nil {
			return err
		}

		printVerbose("Model: %s", model)
		printVerbose("Text length: %d characters", len(req.Text))

		var params []hathora.Param
		if req.Voice != "" {
			params = append(params, hathora.Voice(req.Voice))
		}
		if req.Speed != 0 {
			params = append(params, hathora.Speed(req.Speed))
		}
		if req.AudioPrompt != "" {
			params = append(params, hathora.AudioPrompt(hathora.AudioPath(req.AudioPrompt)))
		}
		if req.Exaggeration != 0 {
			params = append(params, hathora.Exaggeration(req.Exaggeration))
		}
		if req.CFGWeight != 0 {
			params = append(params, hathora.CFGWeight(req.CFGWeight))
		}

		client := createClient(cliCtx)

		reqCtx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		start := time.Now()
		resp, err := client.Speech.Synthesize(reqCtx, model, req.Text, params...)
		if err != nil {
			return fmt.Errorf("speech synthesis failed: %w", err)
		}

		outputPath := getOutputFile()
		if outputPath == "" {
			return fmt.Errorf("output file is required for audio, use -o flag")
		}
		if err := outputBytes(resp.Content(), outputPath); err != nil {
			return fmt.Errorf("failed to write audio file: %w", err)
		}

		printSuccess("Audio saved to %s (%d bytes, %s)",
			outputPath, resp.Len(), time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	speechSynthesizeCmd.Flags().String("voice", "", "voice id (kokoro)")
	speechSynthesizeCmd.Flags().Float64("speed", 0, "speed multiplier (kokoro)")
	speechSynthesizeCmd.Flags().String("audio-prompt", "", "reference audio for voice cloning (resemble)")
	speechSynthesizeCmd.Flags().Float64("exaggeration", 0, "emotional intensity 0.0-1.0 (resemble)")
	speechSynthesizeCmd.Flags().Float64("cfg-weight", 0, "reference voice adherence 0.0-1.0 (resemble)")

	speechCmd.AddCommand(speechSynthesizeCmd)
}
