// Package fileutil provides text file read/write helpers with transparent
// xz compression.
package fileutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/865charlesw/x12tools/core/errors"
)

// isXZ reports whether path names an xz-compressed file.
func isXZ(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xz")
}

// ReadText reads the entire file at path as UTF-8 text. Files with an .xz
// extension are decompressed transparently. Bytes are passed through
// unmodified; no encoding negotiation is performed.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if isXZ(path) {
		xr, err := xz.NewReader(f)
		if err != nil {
			return "", errors.NewIO("decompress", path, err)
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.NewIO("read", path, err)
	}
	return string(data), nil
}

// WriteText writes text to path, overwriting any existing content and
// creating parent directories as needed. Files with an .xz extension are
// compressed on the way out.
func WriteText(path, text string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewIO("create directory", dir, err)
		}
	}

	if !isXZ(path) {
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return errors.NewIO("write", path, err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.NewIO("create", path, err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		return errors.NewIO("compress", path, err)
	}
	if _, err := w.Write([]byte(text)); err != nil {
		w.Close()
		f.Close()
		return errors.NewIO("write", path, err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return errors.NewIO("compress", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewIO("close", path, err)
	}
	return nil
}
