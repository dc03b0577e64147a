package archive

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/darius04/testfiles/internal/ports"
)

// The three archive members, written in insertion order. The ZIP must open
// cleanly with any standard reader.
var zipEntries = []struct {
	name    string
	content string
}{
	{"readme.txt", "This is content inside the ZIP file"},
	{"data.json", `{"test": "data", "file": "organizer"}`},
	{"folder/nested_file.txt", "Nested file content"},
}

// rarPlaceholder is not a valid RAR container; consumers must not open it.
var rarPlaceholder = []byte("RAR archive placeholder for testing")

// Builder writes a real ZIP archive and a placeholder .rar blob.
type Builder struct{}

func New() ports.Builder {
	return &Builder{}
}

func (b *Builder) Category() ports.Category {
	return ports.CategoryArchive
}

func (b *Builder) Build(dir string) ([]string, error) {
	if err := writeZip(filepath.Join(dir, "test_archive.zip")); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(dir, "backup.rar"), rarPlaceholder, 0666); err != nil {
		return nil, fmt.Errorf("failed to write backup.rar: %w", err)
	}
	return []string{"test_archive.zip", "backup.rar"}, nil
}

// writeZip writes the three-entry archive. Both the zip writer and the file
// handle are closed on every exit path so a failed run never leaves the
// container handle open.
func writeZip(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	zw := zip.NewWriter(f)
	for _, entry := range zipEntries {
		w, err := zw.Create(entry.name)
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("failed to create zip entry %s: %w", entry.name, err)
		}
		if _, err := w.Write([]byte(entry.content)); err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("failed to write zip entry %s: %w", entry.name, err)
		}
	}
	// Close the ZIP first: this writes the central directory and EOCD.
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return f.Close()
}
