package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/darius04/testfiles/internal/ports"
)

// pdfContent is plain text under a .pdf extension. The downstream organizer
// categorizes by extension only, so a structurally valid PDF is not needed;
// the body says so for anyone who opens it.
const pdfContent = `
%PDF-1.4 (This is a fake PDF for testing)
File Organizer Pro - Test Document
==================================

This file simulates a PDF document.
In real usage, this would be a proper PDF file.

The File Organizer should move this to Documents folder.

Test completed successfully!
`

const rtfContent = `{\rtf1\ansi\deff0 {\fonttbl {\f0 Times New Roman;}}
\f0\fs24 File Organizer Test RTF Document\par
\par
This is a Rich Text Format document for testing.\par
\par
Features:\par
- RTF formatting\par
- Document organization\par
- File type detection\par
\par
Author: Darius04-ux\par
}`

// Builder writes the two document fixtures: a fake PDF and a minimal RTF.
type Builder struct{}

func New() ports.Builder {
	return &Builder{}
}

func (b *Builder) Category() ports.Category {
	return ports.CategoryDocument
}

func (b *Builder) Build(dir string) ([]string, error) {
	files := []struct {
		name    string
		content string
	}{
		{"test_document.pdf", pdfContent},
		{"report.rtf", rtfContent},
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
