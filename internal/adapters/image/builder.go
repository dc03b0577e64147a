package image

import (
	"fmt"
	"path/filepath"

	"github.com/darius04/testfiles/internal/ports"
)

// Builder produces the two image fixtures through whichever Renderer was
// selected at startup. It never branches on capability itself; the variant
// choice happened once at the composition root.
type Builder struct {
	renderer ports.Renderer
}

func New(renderer ports.Renderer) ports.Builder {
	return &Builder{renderer: renderer}
}

func (b *Builder) Category() ports.Category {
	return ports.CategoryImage
}

func (b *Builder) Build(dir string) ([]string, error) {
	if err := b.renderer.RenderPNG(filepath.Join(dir, "sample_image.png")); err != nil {
		return nil, fmt.Errorf("failed to render sample_image.png: %w", err)
	}
	if err := b.renderer.RenderJPEG(filepath.Join(dir, "test_photo.jpg")); err != nil {
		return nil, fmt.Errorf("failed to render test_photo.jpg: %w", err)
	}
	return []string{"sample_image.png", "test_photo.jpg"}, nil
}
