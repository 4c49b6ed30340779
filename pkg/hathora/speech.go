package hathora

import (
	"context"
	"fmt"
	"strconv"
)

// SpeechService provides text-to-speech synthesis operations.
type SpeechService struct {
	client *Client
}

func newSpeechService(client *Client) *SpeechService {
	return &SpeechService{client: client}
}

// Synthesize converts text to speech with the given model.
//
// Parameters are model-specific; pass them with the typed helpers and
// discover them with ModelParameters or ModelHelp. Unknown parameters fail
// with *ValidationError before any network call.
//
// Example:
//
//	resp, err := client.Speech.Synthesize(ctx, hathora.ModelKokoro,
//	    "Hello world",
//	    hathora.Voice("af_bella"),
//	    hathora.Speed(1.2),
//	)
//	if err != nil {
//	    return err
//	}
//	resp.Save("output.wav")
func (s *SpeechService) Synthesize(ctx context.Context, model, text string, params ...Param) (*AudioResponse, error) {
	spec, err := lookupModel(CapabilitySynthesis, model)
	if err != nil {
		return nil, err
	}
	vals, err := resolveParams(spec, params)
	if err != nil {
		return nil, err
	}

	var result *rawResult
	switch spec.encoding {
	case encodeJSON:
		body := map[string]any{"text": text}
		for name, v := range vals {
			body[name] = v
		}
		result, err = s.client.http.postJSON(ctx, s.client.endpointURL(spec), nil, body)

	case encodeMultipart:
		fields := map[string]string{"text": text}
		var part *filePart
		var closeInput func() error
		for name, v := range vals {
			in, ok := v.(AudioInput)
			if !ok {
				fields[name] = formFieldValue(v)
				continue
			}
			rc, mime, openErr := in.open()
			if openErr != nil {
				return nil, openErr
			}
			closeInput = rc.Close
			part = &filePart{field: name, filename: name, contentType: mime, r: rc}
		}
		if closeInput != nil {
			defer closeInput()
		}
		result, err = s.client.http.postForm(ctx, s.client.endpointURL(spec), nil, fields, part)
	}
	if err != nil {
		return nil, err
	}

	if !result.isAudio() {
		return nil, &Error{
			StatusCode: result.status,
			Message:    fmt.Sprintf("unexpected response format from %s model", model),
		}
	}
	return &AudioResponse{content: result.audio, ContentType: result.contentType}, nil
}

// KokoroRequest holds parameters for the Kokoro model. Zero fields fall
// back to the documented defaults.
type KokoroRequest struct {
	// Text is the text to synthesize.
	Text string `json:"text" yaml:"text"`

	// Voice selects the synthesis voice (default "af_bella").
	Voice string `json:"voice,omitempty" yaml:"voice,omitempty"`

	// Speed is the speed multiplier (default 1.0).
	Speed float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
}

// Kokoro generates speech with the Kokoro-82M model.
func (s *SpeechService) Kokoro(ctx context.Context, req *KokoroRequest) (*AudioResponse, error) {
	var params []Param
	if req.Voice != "" {
		params = append(params, Voice(req.Voice))
	}
	if req.Speed != 0 {
		params = append(params, Speed(req.Speed))
	}
	return s.Synthesize(ctx, ModelKokoro, req.Text, params...)
}

// ResembleRequest holds parameters for the ResembleAI Chatterbox model.
// Zero fields fall back to the documented defaults; AudioPrompt is optional
// and enables voice cloning when set.
type ResembleRequest struct {
	// Text is the text to synthesize.
	Text string `json:"text" yaml:"text"`

	// AudioPrompt is reference audio for voice cloning.
	AudioPrompt AudioInput `json:"-" yaml:"-"`

	// Exaggeration is the emotional intensity, 0.0-1.0 (default 0.5).
	Exaggeration float64 `json:"exaggeration,omitempty" yaml:"exaggeration,omitempty"`

	// CFGWeight is adherence to the reference voice, 0.0-1.0 (default 0.5).
	CFGWeight float64 `json:"cfg_weight,omitempty" yaml:"cfg_weight,omitempty"`
}

// Resemble generates speech with the ResembleAI Chatterbox model,
// optionally cloning the voice from a reference recording.
func (s *SpeechService) Resemble(ctx context.Context, req *ResembleRequest) (*AudioResponse, error) {
	var params []Param
	if req.AudioPrompt != nil {
		params = append(params, AudioPrompt(req.AudioPrompt))
	}
	if req.Exaggeration != 0 {
		params = append(params, Exaggeration(req.Exaggeration))
	}
	if req.CFGWeight != 0 {
		params = append(params, CFGWeight(req.CFGWeight))
	}
	return s.Synthesize(ctx, ModelResemble, req.Text, params...)
}

// formFieldValue renders a scalar parameter as a multipart form field.
func formFieldValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case int:
		return strconv.Itoa(n)
	case bool:
		return strconv.FormatBool(n)
	}
	return fmt.Sprint(v)
}
