package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileWriter persists artifacts as <dir>/<name>. Last write wins.
type FileWriter struct {
	dir string
}

func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

func (w *FileWriter) Dir() string {
	return w.dir
}

// Write creates the output directory if needed and replaces any existing
// file with the same name.
func (w *FileWriter) Write(name string, content []byte) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("FileWriter.Write - invalid artifact name %q", name)
	}

	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return fmt.Errorf("FileWriter.Write - creating output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(w.dir, name), content, filePerm); err != nil {
		return fmt.Errorf("FileWriter.Write - writing file %s: %w", name, err)
	}
	return nil
}
