package hathora

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// httpClient handles HTTP communication with the model endpoints.
// One blocking call per request, no retries; the timeout comes from the
// underlying *http.Client.
type httpClient struct {
	client *http.Client
	apiKey string
}

func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client: cfg.httpClient,
		apiKey: cfg.apiKey,
	}
}

// filePart is one binary part of a multipart request.
type filePart struct {
	field       string
	filename    string
	contentType string
	r           io.Reader
}

// rawResult is the normalized outcome of one HTTP call: audio bytes, a
// parsed JSON object, or plain text, depending on what the server sent.
type rawResult struct {
	status      int
	contentType string
	audio       []byte
	json        map[string]any
	text        string
}

func (r *rawResult) isAudio() bool { return r.audio != nil }
func (r *rawResult) isJSON() bool  { return r.json != nil }

// postJSON sends a JSON-encoded POST and normalizes the response.
func (h *httpClient) postJSON(ctx context.Context, endpoint string, query url.Values, body any) (*rawResult, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, withQuery(endpoint, query), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	h.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	return h.do(req)
}

// postForm sends a multipart/form-data POST with scalar fields and at most
// one binary part, streamed through an io.Pipe so the payload is never
// buffered whole in memory.
func (h *httpClient) postForm(ctx context.Context, endpoint string, query url.Values, fields map[string]string, file *filePart) (*rawResult, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	errCh := make(chan error, 1)
	go func() {
		defer pw.Close()

		for key, value := range fields {
			if err := writer.WriteField(key, value); err != nil {
				errCh <- fmt.Errorf("write field %s: %w", key, err)
				return
			}
		}

		if file != nil {
			part, err := createFormFile(writer, file.field, file.filename, file.contentType)
			if err != nil {
				errCh <- fmt.Errorf("create form file: %w", err)
				return
			}
			if _, err := io.Copy(part, file.r); err != nil {
				errCh <- fmt.Errorf("copy file: %w", err)
				return
			}
		}

		if err := writer.Close(); err != nil {
			errCh <- fmt.Errorf("close writer: %w", err)
			return
		}
		errCh <- nil
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, withQuery(endpoint, query), pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("create request: %w", err)
	}
	h.setHeaders(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	result, err := h.do(req)
	if err != nil {
		// The transport closes the pipe reader on failure, which unblocks
		// the writer goroutine.
		<-errCh
		return nil, err
	}
	if writeErr := <-errCh; writeErr != nil {
		return nil, writeErr
	}
	return result, nil
}

// createFormFile is multipart.Writer.CreateFormFile with an explicit
// part content type instead of application/octet-stream.
func createFormFile(w *multipart.Writer, field, filename, contentType string) (io.Writer, error) {
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	hdr.Set("Content-Type", contentType)
	return w.CreatePart(hdr)
}

func withQuery(endpoint string, query url.Values) string {
	if len(query) == 0 {
		return endpoint
	}
	return endpoint + "?" + query.Encode()
}

// setHeaders sets common headers for API requests.
func (h *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hathora-models-go/1.0")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}
}

// do performs the request and maps the outcome: transport failures and
// timeouts become *Error with no status, 401 becomes *AuthError, other
// non-2xx statuses become *Error with the extracted server message, and
// success bodies are classified by content type.
func (h *httpClient) do(req *http.Request) (*rawResult, error) {
	resp, err := h.client.Do(req)
	if err != nil {
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return nil, &Error{Message: fmt.Sprintf("request timed out after %s", h.client.Timeout)}
		}
		return nil, &Error{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("read response body: %v", err)}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &AuthError{Message: "invalid API key or authentication failed"}
	}
	if resp.StatusCode >= 400 {
		return nil, parseAPIError(body, resp.StatusCode)
	}

	return classifyBody(resp.Header.Get("Content-Type"), body, resp.StatusCode), nil
}

// parseAPIError extracts the server's error message from a non-2xx body.
// The conventional shape is {"error": {"message": "..."}}; anything else
// falls back to the raw body text.
func parseAPIError(body []byte, status int) *Error {
	apiErr := &Error{StatusCode: status, Message: strings.TrimSpace(string(body))}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}
	apiErr.Response = parsed
	if obj, ok := parsed["error"].(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}

// classifyBody normalizes a success response. Audio is recognized by
// content type or by container signature (RIFF header, MP3 frame sync),
// since some endpoints return audio bytes without a useful content type.
func classifyBody(contentType string, body []byte, status int) *rawResult {
	ct := strings.ToLower(contentType)

	if strings.Contains(ct, "application/json") {
		var parsed map[string]any
		if err := json.Unmarshal(body, &parsed); err == nil {
			return &rawResult{status: status, contentType: ct, json: parsed}
		}
		return &rawResult{status: status, contentType: ct, text: string(body)}
	}

	if strings.Contains(ct, "audio") || hasAudioSignature(body) {
		audioCT := contentType
		if !strings.Contains(ct, "audio") {
			audioCT = defaultAudioMIME
		}
		return &rawResult{status: status, contentType: audioCT, audio: body}
	}

	return &rawResult{status: status, contentType: ct, text: string(body)}
}

// hasAudioSignature matches known audio container headers: "RIFF" for WAV
// and the 0xFFFB frame sync for MP3.
func hasAudioSignature(body []byte) bool {
	if len(body) < 4 {
		return false
	}
	if bytes.HasPrefix(body, []byte("RIFF")) {
		return true
	}
	return body[0] == 0xff && body[1] == 0xfb
}
