package hathora

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestAudioPathOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.ogg")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	rc, mime, err := AudioPath(path).open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	if mime != "audio/ogg" {
		t.Errorf("mime = %q, want audio/ogg", mime)
	}
	data, _ := io.ReadAll(rc)
	if string(data) != "data" {
		t.Errorf("content = %q", data)
	}
}

func TestAudioPathMissing(t *testing.T) {
	_, _, err := AudioPath(filepath.Join(t.TempDir(), "gone.wav")).open()
	if _, ok := AsFileError(err); !ok {
		t.Fatalf("error = %v, want *FileError", err)
	}
}

func TestAudioPathDirectory(t *testing.T) {
	_, _, err := AudioPath(t.TempDir()).open()
	fe, ok := AsFileError(err)
	if !ok {
		t.Fatalf("error = %v, want *FileError", err)
	}
	if fe.Path == "" {
		t.Error("error should carry the path")
	}
}

func TestAudioReaderOpen(t *testing.T) {
	rc, mime, err := AudioReader(bytes.NewReader([]byte("xyz")), "take.flac").open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	if mime != "audio/flac" {
		t.Errorf("mime = %q, want audio/flac", mime)
	}
}

func TestAudioReaderNil(t *testing.T) {
	_, _, err := AudioReader(nil, "").open()
	if _, ok := AsFileError(err); !ok {
		t.Fatalf("error = %v, want *FileError", err)
	}
}

func TestAudioBytesOpen(t *testing.T) {
	rc, mime, err := AudioBytes([]byte("abc")).open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	if mime != "audio/wav" {
		t.Errorf("mime = %q, want audio/wav default", mime)
	}
	data, _ := io.ReadAll(rc)
	if !bytes.Equal(data, []byte("abc")) {
		t.Errorf("content = %q", data)
	}
}
