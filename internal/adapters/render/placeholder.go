package render

import (
	"os"

	"github.com/darius04/testfiles/internal/ports"
)

// Fixed blobs written in place of real image data when rendering is
// unavailable. Filenames and extensions stay identical to the raster output
// so downstream categorization is unchanged.
var (
	PNGPlaceholder  = []byte("PNG placeholder")
	JPEGPlaceholder = []byte("JPEG placeholder")
)

// Placeholder is the degraded Renderer variant.
type Placeholder struct{}

func NewPlaceholder() ports.Renderer {
	return &Placeholder{}
}

func (p *Placeholder) Real() bool { return false }

func (p *Placeholder) RenderPNG(outPath string) error {
	return os.WriteFile(outPath, PNGPlaceholder, 0666)
}

func (p *Placeholder) RenderJPEG(outPath string) error {
	return os.WriteFile(outPath, JPEGPlaceholder, 0666)
}
