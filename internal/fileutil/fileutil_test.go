package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/865charlesw/x12tools/core/errors"
)

func TestWriteAndReadText(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.x12")
	content := "ST*837*0001~SE*2*0001~"

	if err := WriteText(path, content); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != content {
		t.Errorf("content mismatch: got %q, want %q", got, content)
	}
}

func TestWriteText_Overwrites(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.x12")

	if err := WriteText(path, "first"); err != nil {
		t.Fatal(err)
	}
	if err := WriteText(path, "second"); err != nil {
		t.Fatal(err)
	}
	got, err := ReadText(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("expected overwritten content, got %q", got)
	}
}

func TestWriteText_CreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "deep", "doc.x12")

	if err := WriteText(path, "content"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("file not created in nested directory")
	}
}

func TestWriteAndReadText_XZ(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.x12.xz")
	content := "ST*837*0001~SE*2*0001~"

	if err := WriteText(path, content); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	// On-disk bytes are compressed, not the raw text.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) == content {
		t.Error("xz file stored uncompressed")
	}

	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != content {
		t.Errorf("content mismatch: got %q, want %q", got, content)
	}
}

func TestReadText_NonexistentFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.x12"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var ioErr *errors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
	if ioErr.Operation != "open" {
		t.Errorf("expected operation 'open', got %q", ioErr.Operation)
	}
}

func TestUTF8PassThrough(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.x12")
	content := "NM1*IL*1*Müller~"

	if err := WriteText(path, content); err != nil {
		t.Fatal(err)
	}
	got, err := ReadText(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Errorf("non-ASCII payload corrupted: got %q", got)
	}
}
