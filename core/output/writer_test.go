package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path, err := w.Write("conversation-abc.pdf", []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("written to %q, want under %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "%PDF-fake" {
		t.Errorf("content = %q", data)
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	if _, err := New(dir); err != nil {
		t.Fatalf("New: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}
