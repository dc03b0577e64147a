package code

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/darius04/testfiles/internal/ports"
)

const pythonContent = `#!/usr/bin/env python3
"""
Sample Python script for File Organizer testing
"""

def hello_world():
    print("Hello from File Organizer test!")
    print("This Python file should go to Code folder")

if __name__ == "__main__":
    hello_world()
`

const jsContent = `// Sample JavaScript file for testing
console.log("File Organizer Pro - JavaScript Test");

function organizeFiles() {
    console.log("This JS file should go to Code folder");
    return "File organization complete!";
}

organizeFiles();
`

const htmlContent = `<!DOCTYPE html>
<html>
<head>
    <title>File Organizer Test</title>
</head>
<body>
    <h1>File Organizer Pro</h1>
    <p>This HTML file should be moved to Code folder</p>
    <p>Testing file organization...</p>
</body>
</html>
`

// Builder writes the three source/markup fixtures. Each is syntactically
// valid in its own language and names its downstream category in a comment
// or text line.
type Builder struct{}

func New() ports.Builder {
	return &Builder{}
}

func (b *Builder) Category() ports.Category {
	return ports.CategoryCode
}

func (b *Builder) Build(dir string) ([]string, error) {
	files := []struct {
		name    string
		content string
	}{
		{"sample_script.py", pythonContent},
		{"app.js", jsContent},
		{"index.html", htmlContent},
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(f.content), 0666); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		names = append(names, f.name)
	}
	return names, nil
}
