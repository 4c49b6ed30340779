package hathora

import (
	"testing"
)

func TestClassifyBodyJSON(t *testing.T) {
	r := classifyBody("application/json; charset=utf-8", []byte(`{"text":"hi"}`), 200)
	if !r.isJSON() {
		t.Fatal("expected JSON result")
	}
	if r.json["text"] != "hi" {
		t.Errorf("json = %v", r.json)
	}
}

func TestClassifyBodyAudioContentType(t *testing.T) {
	r := classifyBody("audio/mpeg", []byte{0x00, 0x01, 0x02, 0x03}, 200)
	if !r.isAudio() {
		t.Fatal("expected audio result")
	}
	if r.contentType != "audio/mpeg" {
		t.Errorf("content type = %q, want audio/mpeg", r.contentType)
	}
}

func TestClassifyBodyAudioSignature(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"riff", []byte("RIFF....WAVE")},
		{"mp3", []byte{0xff, 0xfb, 0x90, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := classifyBody("application/octet-stream", tt.body, 200)
			if !r.isAudio() {
				t.Fatal("expected audio result from byte signature")
			}
			if r.contentType != "audio/wav" {
				t.Errorf("content type = %q, want audio/wav fallback", r.contentType)
			}
		})
	}
}

func TestClassifyBodyPlainText(t *testing.T) {
	r := classifyBody("text/plain", []byte("hello"), 200)
	if r.isAudio() || r.isJSON() {
		t.Fatal("expected text result")
	}
	if r.text != "hello" {
		t.Errorf("text = %q", r.text)
	}
}

func TestParseAPIErrorStructured(t *testing.T) {
	err := parseAPIError([]byte(`{"error":{"message":"model overloaded"}}`), 503)
	if err.StatusCode != 503 {
		t.Errorf("status = %d, want 503", err.StatusCode)
	}
	if err.Message != "model overloaded" {
		t.Errorf("message = %q, want extracted server message", err.Message)
	}
	if err.Response == nil {
		t.Error("parsed JSON body should be kept on the error")
	}
	if !err.IsServerError() {
		t.Error("503 should classify as server error")
	}
}

func TestParseAPIErrorUnstructured(t *testing.T) {
	err := parseAPIError([]byte("bad request\n"), 400)
	if err.Message != "bad request" {
		t.Errorf("message = %q, want trimmed raw body", err.Message)
	}
	if err.Response != nil {
		t.Error("non-JSON body should leave Response nil")
	}
}

func TestAudioMIMEType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"voice.wav", "audio/wav"},
		{"Voice.MP3", "audio/mpeg"},
		{"clip.m4a", "audio/mp4"},
		{"clip.flac", "audio/flac"},
		{"raw.pcm", "audio/pcm"},
		{"unknown.bin", "audio/wav"},
		{"", "audio/wav"},
	}
	for _, tt := range tests {
		if got := audioMIMEType(tt.name); got != tt.want {
			t.Errorf("audioMIMEType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
