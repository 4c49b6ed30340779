package hathora_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hathora/models-sdk/pkg/hathora"
)

func writeTestAudio(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribe(t *testing.T) {
	audio := []byte("RIFFfakeaudio")
	var gotFile []byte
	var gotType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/transcribe" {
			t.Errorf("path = %q, want /v1/transcribe", r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer file.Close()
		gotFile, _ = io.ReadAll(file)
		gotType = hdr.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"hello","confidence":0.9,"language":"en"}`))
	}))
	defer srv.Close()

	path := writeTestAudio(t, "input.mp3", audio)
	client := hathora.NewClient("test-key", hathora.WithModelURL(hathora.ModelParakeet, srv.URL))
	resp, err := client.Transcription.Transcribe(t.Context(), hathora.ModelParakeet, hathora.AudioPath(path))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(gotFile, audio) {
		t.Error("uploaded bytes do not match the input file")
	}
	if gotType != "audio/mpeg" {
		t.Errorf("file content type = %q, want audio/mpeg from .mp3", gotType)
	}
	if resp.Text != "hello" {
		t.Errorf("text = %q, want hello", resp.Text)
	}
	if resp.Metadata["confidence"] != 0.9 || resp.Metadata["language"] != "en" {
		t.Errorf("metadata = %v", resp.Metadata)
	}
	if _, ok := resp.Metadata["text"]; ok {
		t.Error("metadata must exclude the text field")
	}
}

func TestTranscribeWindowQueryParams(t *testing.T) {
	var gotStart, gotEnd string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("start_time")
		gotEnd = r.URL.Query().Get("end_time")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"windowed"}`))
	}))
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithModelURL(hathora.ModelParakeet, srv.URL))
	_, err := client.Transcription.Transcribe(t.Context(), hathora.ModelParakeet,
		hathora.AudioBytes([]byte("RIFFaudio")),
		hathora.StartTime(3.0), hathora.EndTime(9.5))
	if err != nil {
		t.Fatal(err)
	}
	if gotStart != "3" || gotEnd != "9.5" {
		t.Errorf("query = start_time=%q end_time=%q, want 3 and 9.5", gotStart, gotEnd)
	}
}

func TestTranscribeNoWindowNoQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Query()) != 0 {
			t.Errorf("unexpected query parameters: %v", r.URL.Query())
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"plain"}`))
	}))
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithModelURL(hathora.ModelParakeet, srv.URL))
	if _, err := client.Transcription.Transcribe(t.Context(), hathora.ModelParakeet,
		hathora.AudioBytes([]byte("RIFFaudio"))); err != nil {
		t.Fatal(err)
	}
}

func TestTranscribePlainTextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("just words"))
	}))
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithModelURL(hathora.ModelParakeet, srv.URL))
	resp, err := client.Transcription.Transcribe(t.Context(), hathora.ModelParakeet,
		hathora.AudioBytes([]byte("RIFFaudio")))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "just words" {
		t.Errorf("text = %q", resp.Text)
	}
	if len(resp.Metadata) != 0 {
		t.Errorf("metadata = %v, want empty", resp.Metadata)
	}
}

func TestTranscribeFileMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request for missing audio file")
	}))
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithModelURL(hathora.ModelParakeet, srv.URL))
	_, err := client.Transcription.TranscribeFile(t.Context(), filepath.Join(t.TempDir(), "nope.wav"))
	if _, ok := hathora.AsFileError(err); !ok {
		t.Fatalf("error = %v, want *FileError", err)
	}
}

func TestTranscribeReaderInput(t *testing.T) {
	audio := []byte("RIFFstreamed")
	var gotFile []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer file.Close()
		gotFile, _ = io.ReadAll(file)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"ok"}`))
	}))
	defer srv.Close()

	client := hathora.NewClient("test-key", hathora.WithModelURL(hathora.ModelParakeet, srv.URL))
	_, err := client.Transcription.Transcribe(t.Context(), hathora.ModelParakeet,
		hathora.AudioReader(bytes.NewReader(audio), "clip.ogg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(gotFile, audio) {
		t.Error("uploaded bytes do not match the reader content")
	}
}
