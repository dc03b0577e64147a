package ports

// Renderer is the port for producing the two image fixtures. Exactly one
// implementation is selected at startup: a raster renderer when image
// encoding is available, otherwise a placeholder-bytes renderer that keeps
// the same filenames and extensions.
type Renderer interface {
	RenderPNG(outPath string) error
	RenderJPEG(outPath string) error
	// Real reports whether this renderer produces valid image data.
	Real() bool
}
