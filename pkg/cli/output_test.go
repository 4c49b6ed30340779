package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Output(map[string]any{"text": "hello"}, OutputOptions{
		Format: FormatJSON,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !strings.Contains(buf.String(), `"text": "hello"`) {
		t.Errorf("unexpected JSON output: %s", buf.String())
	}
}

func TestOutputYAMLDefault(t *testing.T) {
	var buf bytes.Buffer
	err := Output(map[string]any{"model": "kokoro"}, OutputOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !strings.Contains(buf.String(), "model: kokoro") {
		t.Errorf("unexpected YAML output: %s", buf.String())
	}
}

func TestOutputRaw(t *testing.T) {
	var buf bytes.Buffer
	err := Output("plain text", OutputOptions{Format: FormatRaw, Writer: &buf})
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if buf.String() != "plain text" {
		t.Errorf("raw output = %q", buf.String())
	}
}

func TestOutputToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	err := Output(map[string]any{"ok": true}, OutputOptions{
		Format: FormatJSON,
		File:   path,
	})
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"ok": true`) {
		t.Errorf("file content = %s", data)
	}
}

func TestOutputBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.wav")
	data := []byte("RIFF....WAVE")

	if err := OutputBytes(data, path); err != nil {
		t.Fatalf("OutputBytes: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("written data mismatch")
	}

	if err := OutputBytes(data, ""); err == nil {
		t.Error("expected error with empty path")
	}
}
