package code

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

	if builder.Category() != ports.CategoryCode {
		t.Errorf("Category() = %q, want %q", builder.Category(), ports.CategoryCode)
	}

	dir := t.TempDir()
	names, err := builder.Build(dir)
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}
	wantNames := []string{"sample_script.py", "app.js", "index.html"}
	for i, want := range wantNames {
		if names[i] != want {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want)
		}
	}

	testCases := []struct {
		name         string
		content      string
		categoryNote string // each file names its downstream category
	}{
		{"sample_script.py", pythonContent, "This Python file should go to Code folder"},
		{"app.js", jsContent, "This JS file should go to Code folder"},
		{"index.html", htmlContent, "This HTML file should be moved to Code folder"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, readErr := os.ReadFile(filepath.Join(dir, tc.name))
			if readErr != nil {
				t.Fatalf("failed to read %s: %v", tc.name, readErr)
			}
			if string(data) != tc.content {
				t.Errorf("%s content does not match the fixed literal", tc.name)
			}
			if !strings.Contains(string(data), tc.categoryNote) {
				t.Errorf("%s is missing its category note %q", tc.name, tc.categoryNote)
			}
		})
	}

	// Spot-check syntactic shape.
	py, _ := os.ReadFile(filepath.Join(dir, "sample_script.py"))
	if !strings.HasPrefix(string(py), "#!/usr/bin/env python3\n") {
		t.Error("sample_script.py is missing its shebang line")
	}
	html, _ := os.ReadFile(filepath.Join(dir, "index.html"))
	if !strings.HasPrefix(string(html), "<!DOCTYPE html>") {
		t.Error("index.html is missing its doctype")
	}
}

func TestBuilder_Build_MissingDir(t *testing.T) {
	builder := New()
	if _, err := builder.Build(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Error("Build() into a missing directory expected an error, got nil")
	}
}
