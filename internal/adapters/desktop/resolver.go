package desktop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/darius04/testfiles/internal/ports"
)

// ErrNoDesktop is returned when the user home directory contains neither a
// Desktop nor a Pulpit folder.
var ErrNoDesktop = errors.New("no Desktop or Pulpit folder found in the user home directory")

// FixtureFolder is the subfolder created beneath the desktop for generated files.
const FixtureFolder = "test_files"

// desktopNames are probed in order. "Pulpit" is the Polish desktop folder.
var desktopNames = []string{"Desktop", "Pulpit"}

// Resolver locates the per-user desktop folder and ensures the fixture
// subfolder exists beneath it.
type Resolver struct {
	home string
}

// New constructs a Resolver rooted at the given home directory.
func New(home string) ports.TargetResolver {
	return &Resolver{home: home}
}

// Resolve returns the fixture directory beneath the first desktop folder
// found, creating the subfolder if it does not exist yet. No directory is
// created when resolution fails.
func (r *Resolver) Resolve() (string, error) {
	var desktop string
	for _, name := range desktopNames {
		candidate := filepath.Join(r.home, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			desktop = candidate
			break
		}
	}
	if desktop == "" {
		return "", ErrNoDesktop
	}
	dir := filepath.Join(desktop, FixtureFolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create fixture folder %s: %w", dir, err)
	}
	return dir, nil
}

// Fixed resolves to a caller-supplied directory instead of probing for a
// desktop folder. Used by the --dir CLI override.
type Fixed struct {
	dir string
}

// NewFixed constructs a Fixed resolver for dir.
func NewFixed(dir string) ports.TargetResolver {
	return &Fixed{dir: dir}
}

func (f *Fixed) Resolve() (string, error) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create fixture folder %s: %w", f.dir, err)
	}
	return f.dir, nil
}
