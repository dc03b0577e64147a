package application

import (
	"fmt"
	"os"
	"sort"

	"github.com/darius04/testfiles/internal/ports"
)

// ProgressFunc is invoked once after each builder completes, with the
// builder's category and the names of the files it wrote.
type ProgressFunc func(category ports.Category, files []string)

// Manifest describes the outcome of a generation run.
type Manifest struct {
	Dir      string   // fixture directory the files were written into
	Files    []string // regular files present after the run, sorted by name
	Degraded bool     // true when the placeholder renderer produced the images
}

// FixtureService orchestrates fixture generation: it resolves the target
// directory, runs every builder once in a fixed order, then lists what was
// created.
type FixtureService struct {
	resolver ports.TargetResolver
	builders []ports.Builder
	degraded bool
	progress ProgressFunc
}

// NewFixtureService constructs a FixtureService. The builders run in slice
// order. degraded records whether the placeholder renderer was selected;
// progress may be nil.
func NewFixtureService(resolver ports.TargetResolver, builders []ports.Builder, degraded bool, progress ProgressFunc) *FixtureService {
	return &FixtureService{
		resolver: resolver,
		builders: builders,
		degraded: degraded,
		progress: progress,
	}
}

// Run generates the whole fixture corpus and returns the resulting manifest.
// The first failure aborts the remaining builders; files already written by
// completed builders are kept, with no rollback.
func (s *FixtureService) Run() (*Manifest, error) {
	dir, err := s.resolver.Resolve()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target directory: %w", err)
	}

	for _, builder := range s.builders {
		files, err := builder.Build(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s fixtures: %w", builder.Category(), err)
		}
		if s.progress != nil {
			s.progress(builder.Category(), files)
		}
	}

	files, err := listRegularFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixture directory: %w", err)
	}
	return &Manifest{Dir: dir, Files: files, Degraded: s.degraded}, nil
}

// listRegularFiles returns the names of the regular files directly inside
// dir, sorted by name. Subdirectories and other entry types are skipped.
func listRegularFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
