package text

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/darius04/testfiles/internal/ports"
)

const readmeContent = `
File Organizer Test Document
===========================

This is a test document for the File Organizer Pro.
It should be moved to the Documents folder.

Features tested:
- Text file organization
- Document categorization
- File moving operations

Author: Darius04-ux
`

const notesContent = `
Project Notes
=============

1. File Organizer working perfectly
2. GUI interface responsive
3. Logging system operational
4. Undo functionality tested

Next steps:
- Add more file types
- Improve UI design
- Add batch processing
`

// Builder writes the two plain-text fixtures.
type Builder struct{}

func New() ports.Builder {
	return &Builder{}
}

func (b *Builder) Category() ports.Category {
	return ports.CategoryText
}

// Build writes readme.txt and notes.txt with their fixed contents.
func (b *Builder) Build(dir string) ([]string, error) {
	files := []struct {
		name    string
		content string
	}{
		{"readme.txt", readmeContent},
		{"notes.txt", notesContent},
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
