package hathora

import (
	"context"
	"net/url"
)

// TranscriptionService provides speech-to-text operations.
type TranscriptionService struct {
	client *Client
}

func newTranscriptionService(client *Client) *TranscriptionService {
	return &TranscriptionService{client: client}
}

// Transcribe converts audio to text with the given model.
//
// The audio comes from an AudioInput (file path, reader, or bytes); path
// inputs are checked locally and fail with *FileError before any network
// call. Window bounds go as StartTime/EndTime parameters.
//
// Example:
//
//	resp, err := client.Transcription.Transcribe(ctx, hathora.ModelParakeet,
//	    hathora.AudioPath("meeting.wav"),
//	    hathora.StartTime(3.0),
//	    hathora.EndTime(9.0),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Text)
func (s *TranscriptionService) Transcribe(ctx context.Context, model string, file AudioInput, params ...Param) (*TranscriptionResponse, error) {
	spec, err := lookupModel(CapabilityTranscription, model)
	if err != nil {
		return nil, err
	}
	vals, err := resolveParams(spec, params)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, &FileError{Message: "no audio input provided"}
	}

	query := url.Values{}
	fields := map[string]string{}
	for name, v := range vals {
		if spec.isQueryParam(name) {
			query.Set(name, formFieldValue(v))
		} else {
			fields[name] = formFieldValue(v)
		}
	}

	rc, mime, err := file.open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	part := &filePart{field: "file", filename: "audio", contentType: mime, r: rc}
	result, err := s.client.http.postForm(ctx, s.client.endpointURL(spec), query, fields, part)
	if err != nil {
		return nil, err
	}

	if result.isJSON() {
		text, _ := result.json["text"].(string)
		metadata := make(map[string]any, len(result.json))
		for k, v := range result.json {
			if k != "text" {
				metadata[k] = v
			}
		}
		return &TranscriptionResponse{Text: text, Metadata: metadata}, nil
	}
	return &TranscriptionResponse{Text: result.text, Metadata: map[string]any{}}, nil
}

// TranscribeFile transcribes an audio file on disk with the Parakeet model.
func (s *TranscriptionService) TranscribeFile(ctx context.Context, path string, params ...Param) (*TranscriptionResponse, error) {
	return s.Transcribe(ctx, ModelParakeet, AudioPath(path), params...)
}
