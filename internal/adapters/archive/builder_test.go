package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/darius04/testfiles/internal/ports"
)

func TestBuilder_Build(t *testing.T) {
	builder := New()

	// Ensure it implements the interface
	var _ ports.Builder = builder

	if builder.Category() != ports.CategoryArchive {
		t.Errorf("Category() = %q, want %q", builder.Category(), ports.CategoryArchive)
	}

	dir := t.TempDir()
	names, err := builder.Build(dir)
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}
	wantNames := []string{"test_archive.zip", "backup.rar"}
	for i, want := range wantNames {
		if names[i] != want {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want)
		}
	}

	t.Run("ZipStructure", func(t *testing.T) {
		// The archive must open with a standard reader, without any
		// structural error.
		zr, openErr := zip.OpenReader(filepath.Join(dir, "test_archive.zip"))
		if openErr != nil {
			t.Fatalf("failed to open generated zip: %v", openErr)
		}
		defer zr.Close()

		if len(zr.File) != len(zipEntries) {
			t.Fatalf("zip contains %d entries, want %d", len(zr.File), len(zipEntries))
		}

		// Entries appear in insertion order with exact contents.
		for i, want := range zipEntries {
			entry := zr.File[i]
			if entry.Name != want.name {
				t.Errorf("entry[%d] name = %q, want %q", i, entry.Name, want.name)
				continue
			}
			rc, err := entry.Open()
			if err != nil {
				t.Fatalf("failed to open zip entry %q: %v", entry.Name, err)
			}
			data, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				t.Fatalf("failed to read zip entry %q: %v", entry.Name, err)
			}
			if string(data) != want.content {
				t.Errorf("entry %q content = %q, want %q", entry.Name, data, want.content)
			}
		}
	})

	t.Run("NestedEntry", func(t *testing.T) {
		zr, openErr := zip.OpenReader(filepath.Join(dir, "test_archive.zip"))
		if openErr != nil {
			t.Fatalf("failed to open generated zip: %v", openErr)
		}
		defer zr.Close()

		// Exactly one entry sits one directory level deep.
		nested := 0
		for _, entry := range zr.File {
			if filepath.Dir(entry.Name) != "." {
				nested++
				if entry.Name != "folder/nested_file.txt" {
					t.Errorf("nested entry = %q, want folder/nested_file.txt", entry.Name)
				}
			}
		}
		if nested != 1 {
			t.Errorf("found %d nested entries, want 1", nested)
		}
	})

	t.Run("RarPlaceholder", func(t *testing.T) {
		data, readErr := os.ReadFile(filepath.Join(dir, "backup.rar"))
		if readErr != nil {
			t.Fatalf("failed to read backup.rar: %v", readErr)
		}
		if !bytes.Equal(data, rarPlaceholder) {
			t.Errorf("backup.rar content = %q, want %q", data, rarPlaceholder)
		}
	})
}

func TestBuilder_Build_MissingDir(t *testing.T) {
	builder := New()
	if _, err := builder.Build(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Error("Build() into a missing directory expected an error, got nil")
	}
}

func TestWriteZip_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_archive.zip")

	// A stale, corrupt archive is replaced by a valid one.
	if err := os.WriteFile(path, []byte("not a zip"), 0666); err != nil {
		t.Fatalf("failed to seed stale archive: %v", err)
	}
	if err := writeZip(path); err != nil {
		t.Fatalf("writeZip() returned unexpected error: %v", err)
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("rewritten archive does not open: %v", err)
	}
	zr.Close()
}
