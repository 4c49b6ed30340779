package hathora

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AudioInput is a local audio source for upload: a file path, an open
// reader, or an in-memory buffer. Construct values with AudioPath,
// AudioReader, or AudioBytes.
type AudioInput interface {
	// open resolves the input into a byte stream and its MIME type.
	// The caller owns the returned stream and must close it.
	open() (io.ReadCloser, string, error)
}

type pathInput struct {
	path string
}

// AudioPath references an audio file on disk. The path is checked before
// any network call; a missing file fails with *FileError.
func AudioPath(path string) AudioInput {
	return pathInput{path: path}
}

func (p pathInput) open() (io.ReadCloser, string, error) {
	info, err := os.Stat(p.path)
	if err != nil {
		return nil, "", &FileError{Path: p.path, Message: "file not found"}
	}
	if info.IsDir() {
		return nil, "", &FileError{Path: p.path, Message: "path is a directory, not an audio file"}
	}
	f, err := os.Open(p.path)
	if err != nil {
		return nil, "", &FileError{Path: p.path, Message: "cannot open file: " + err.Error()}
	}
	return f, audioMIMEType(p.path), nil
}

type readerInput struct {
	r    io.Reader
	name string
}

// AudioReader wraps an already-open audio stream. The name is used only to
// infer the MIME type; pass "" for the default.
func AudioReader(r io.Reader, name string) AudioInput {
	return readerInput{r: r, name: name}
}

func (r readerInput) open() (io.ReadCloser, string, error) {
	if r.r == nil {
		return nil, "", &FileError{Message: "nil audio reader"}
	}
	if rc, ok := r.r.(io.ReadCloser); ok {
		return rc, audioMIMEType(r.name), nil
	}
	return io.NopCloser(r.r), audioMIMEType(r.name), nil
}

type bytesInput struct {
	data []byte
}

// AudioBytes wraps raw audio bytes already in memory.
func AudioBytes(data []byte) AudioInput {
	return bytesInput{data: data}
}

func (b bytesInput) open() (io.ReadCloser, string, error) {
	return io.NopCloser(bytes.NewReader(b.data)), defaultAudioMIME, nil
}

const defaultAudioMIME = "audio/wav"

var audioMIMETypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".mp4":  "audio/mp4",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".pcm":  "audio/pcm",
}

// audioMIMEType infers a MIME type from a file name's extension.
func audioMIMEType(name string) string {
	if mt, ok := audioMIMETypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return defaultAudioMIME
}
