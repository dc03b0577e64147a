package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/darius04/testfiles/internal/ports"
)

func TestBuilder_Build(t *testing.T) {
	builder := New()

	// Ensure it implements the interface
	var _ ports.Builder = builder

	if builder.Category() != ports.CategoryDocument {
		t.Errorf("Category() = %q, want %q", builder.Category(), ports.CategoryDocument)
	}

	dir := t.TempDir()
	names, err := builder.Build(dir)
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}
	wantNames := []string{"test_document.pdf", "report.rtf"}
	for i, want := range wantNames {
		if names[i] != want {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want)
		}
	}

	t.Run("FakePDF", func(t *testing.T) {
		data, readErr := os.ReadFile(filepath.Join(dir, "test_document.pdf"))
		if readErr != nil {
			t.Fatalf("failed to read test_document.pdf: %v", readErr)
		}
		if string(data) != pdfContent {
			t.Error("test_document.pdf content does not match the fixed literal")
		}
		// The body must announce itself as a synthetic stand-in.
		if !strings.Contains(string(data), "This is a fake PDF for testing") {
			t.Error("test_document.pdf is missing the fake-PDF note")
		}
	})

	t.Run("RTF", func(t *testing.T) {
		data, readErr := os.ReadFile(filepath.Join(dir, "report.rtf"))
		if readErr != nil {
			t.Fatalf("failed to read report.rtf: %v", readErr)
		}
		content := string(data)
		if content != rtfContent {
			t.Error("report.rtf content does not match the fixed literal")
		}
		// Minimal RTF shape: control-word header, closing brace.
		if !strings.HasPrefix(content, `{\rtf1\ansi`) {
			t.Errorf("report.rtf does not start with an RTF header, got %q", content[:20])
		}
		if !strings.HasSuffix(content, "}") {
			t.Error("report.rtf does not end with a closing brace")
		}
	})
}

func TestBuilder_Build_MissingDir(t *testing.T) {
	builder := New()
	if _, err := builder.Build(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Error("Build() into a missing directory expected an error, got nil")
	}
}
