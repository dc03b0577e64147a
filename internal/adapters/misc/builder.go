package misc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/darius04/testfiles/internal/ports"
)

// appConfig is the fixed object serialized into config.json. Field order
// matters: the organizer's tests decode the keys in this order.
type appConfig struct {
	AppName   string   `json:"app_name"`
	Version   string   `json:"version"`
	Author    string   `json:"author"`
	TestFiles []string `json:"test_files"`
	Features  []string `json:"features"`
}

var configData = appConfig{
	AppName: "File Organizer Pro",
	Version: "1.0",
	Author:  "Darius04-ux",
	TestFiles: []string{
		"readme.txt",
		"sample_image.png",
		"test_document.pdf",
	},
	Features: []string{
		"File organization",
		"GUI interface",
		"Undo functionality",
		"Logging system",
	},
}

const xmlContent = `<?xml version="1.0" encoding="UTF-8"?>
<fileorganizer>
    <name>File Organizer Pro</name>
    <author>Darius04-ux</author>
    <description>Test XML file for file organization</description>
    <files>
        <file type="image">sample_image.png</file>
        <file type="document">test_document.pdf</file>
        <file type="archive">test_archive.zip</file>
    </files>
</fileorganizer>
`

// logContent simulates a prior organizer run. Purely illustrative; not
// derived from any real run.
const logContent = `2025-01-01 10:00:00 - INFO - File Organizer started
2025-01-01 10:00:01 - INFO - Scanning folder for files
2025-01-01 10:00:02 - INFO - Found 15 files to organize
2025-01-01 10:00:03 - INFO - Created Images folder
2025-01-01 10:00:04 - INFO - Moved sample_image.png to Images/
2025-01-01 10:00:05 - INFO - Created Documents folder
2025-01-01 10:00:06 - INFO - Moved test_document.pdf to Documents/
2025-01-01 10:00:07 - INFO - Organization completed successfully
`

// Builder writes the miscellaneous fixtures: structured data, markup config
// and a log file.
type Builder struct{}

func New() ports.Builder {
	return &Builder{}
}

func (b *Builder) Category() ports.Category {
	return ports.CategoryMisc
}

func (b *Builder) Build(dir string) ([]string, error) {
	configJSON, err := json.MarshalIndent(configData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode config.json: %w", err)
	}
	files := []struct {
		name    string
		content []byte
	}{
		{"config.json", configJSON},
		{"data.xml", []byte(xmlContent)},
		{"organizer.log", []byte(logContent)},
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), f.content, 0666); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		names = append(names, f.name)
	}
	return names, nil
}
