package cli

import (
	"os"
	"path/filepath"
	"testing"
)

type sampleRequest struct {
	Text  string  `yaml:"text" json:"text"`
	Speed float64 `yaml:"speed" json:"speed"`
}

func TestParseRequestYAML(t *testing.T) {
	data := []byte("text: hello\nspeed: 1.5\n")
	var req sampleRequest
	if err := ParseRequest(data, "req.yaml", &req); err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Text != "hello" || req.Speed != 1.5 {
		t.Errorf("parsed = %+v", req)
	}
}

func TestParseRequestJSON(t *testing.T) {
	data := []byte(`{"text": "hi", "speed": 0.8}`)
	var req sampleRequest
	if err := ParseRequest(data, "req.json", &req); err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Text != "hi" || req.Speed != 0.8 {
		t.Errorf("parsed = %+v", req)
	}
}

func TestParseRequestUnknownExtension(t *testing.T) {
	var req sampleRequest
	if err := ParseRequest([]byte("text: fallback"), "req.txt", &req); err != nil {
		t.Fatalf("ParseRequest: %v", err)
	}
	if req.Text != "fallback" {
		t.Errorf("Text = %q", req.Text)
	}

	if err := ParseRequest([]byte("{{not valid}}"), "req.txt", &req); err == nil {
		t.Error("expected error for unparseable input")
	}
}

func TestLoadRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	if err := os.WriteFile(path, []byte("text: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var req sampleRequest
	if err := LoadRequest(path, &req); err != nil {
		t.Fatalf("LoadRequest: %v", err)
	}
	if req.Text != "from-file" {
		t.Errorf("Text = %q", req.Text)
	}

	if err := LoadRequest(filepath.Join(t.TempDir(), "missing.yaml"), &req); err == nil {
		t.Error("expected error for missing file")
	}
}
