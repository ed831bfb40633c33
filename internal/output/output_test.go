package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sergiud/glsexpand/internal/config"
)

type fakeClipboard struct {
	text string
}

func (f *fakeClipboard) Copy(text string) error {
	f.text = text
	return nil
}

func TestWriteWithModeCopy(t *testing.T) {
	fake := &fakeClipboard{}
	sink := NewSink().WithClipboard(fake)

	if err := sink.WriteWithMode("expanded text", ModeCopy); err != nil {
		t.Fatalf("WriteWithMode returned error: %v", err)
	}
	if fake.text != "expanded text" {
		t.Errorf("clipboard = %q, want %q", fake.text, "expanded text")
	}
}

func TestWriteWithModeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	config.SetFile(path)

	if err := NewSink().WriteWithMode("file contents", ModeFile); err != nil {
		t.Fatalf("WriteWithMode returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != "file contents" {
		t.Errorf("file = %q, want %q", string(data), "file contents")
	}
}

func TestWriteWithModeFileRequiresPath(t *testing.T) {
	config.SetFile("")

	if err := NewSink().WriteWithMode("text", ModeFile); err == nil {
		t.Error("WriteWithMode with empty path = nil, want error")
	}
}
