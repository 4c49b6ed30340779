// Package hathora provides a Go client for the Hathora models API:
// text-to-speech synthesis, speech-to-text transcription, and LLM chat
// completion.
//
// # Basic Usage
//
//	client := hathora.NewClient("your-api-key")
//
//	// Text to speech
//	audio, err := client.Speech.Synthesize(ctx, hathora.ModelKokoro,
//	    "Hello world", hathora.Voice("af_bella"), hathora.Speed(1.2))
//	if err != nil {
//	    return err
//	}
//	audio.Save("output.wav")
//
//	// Speech to text
//	tr, err := client.Transcription.TranscribeFile(ctx, "audio.wav")
//	fmt.Println(tr.Text)
//
//	// Chat
//	resp, err := client.Chat.Ask(ctx, hathora.ModelQwen, "What is AI?")
//	fmt.Println(resp.Content())
//
// # Model Parameters
//
// Every model declares its parameter contract up front: names, types,
// defaults, and descriptions. Calls with unknown parameters fail locally
// with a *ValidationError that lists the valid names, so the contract is
// discoverable without documentation:
//
//	for _, id := range hathora.Models(hathora.CapabilitySynthesis) {
//	    params, _ := hathora.ModelParameters(hathora.CapabilitySynthesis, id)
//	    for name, spec := range params {
//	        fmt.Printf("%s.%s (%s): %s\n", id, name, spec.Type, spec.Description)
//	    }
//	}
//
// ModelHelp returns the same contract as formatted text, and
// ModelJSONSchema as a JSON Schema document.
//
// # Voice Cloning
//
// The resemble model accepts reference audio as a file path, an open
// reader, or raw bytes:
//
//	audio, err := client.Speech.Resemble(ctx, &hathora.ResembleRequest{
//	    Text:        "Hello world",
//	    AudioPrompt: hathora.AudioPath("reference.wav"),
//	    CFGWeight:   0.8,
//	})
//
// # Error Handling
//
//	audio, err := client.Speech.Synthesize(ctx, model, text, params...)
//	if err != nil {
//	    if e, ok := hathora.AsValidationError(err); ok {
//	        // Bad model id or parameter; e.Message lists valid inputs.
//	    }
//	    if e, ok := hathora.AsError(err); ok {
//	        // API error; e.StatusCode and e.Message describe it.
//	    }
//	    return err
//	}
//
// # Configuration
//
//	client := hathora.NewClient("api-key",
//	    hathora.WithTimeout(60*time.Second),
//	    hathora.WithModelURL(hathora.ModelKokoro, "https://staging.example.com"),
//	    hathora.WithChatBaseURL("https://models.example.com"),
//	)
//
// An empty API key falls back to the HATHORA_API_KEY environment variable.
package hathora
