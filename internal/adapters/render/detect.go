package render

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/darius04/testfiles/internal/ports"
)

// EnvDisable forces the placeholder renderer when set to a non-empty value.
// It stands in for running the generator in an environment without image
// support.
const EnvDisable = "TESTFILES_NO_RENDER"

// Detect selects the image producer once at startup: the raster renderer
// when encoding works, otherwise the placeholder variant. The boolean
// reports whether real rendering is available. A missing capability is never
// an error; callers only downgrade and warn.
func Detect() (ports.Renderer, bool) {
	if os.Getenv(EnvDisable) != "" {
		return NewPlaceholder(), false
	}
	if err := probeEncoders(); err != nil {
		return NewPlaceholder(), false
	}
	return NewRaster(), true
}

// probeEncoders round-trips a 1x1 image through both encoders in memory.
func probeEncoders() error {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	buf.Reset()
	return jpeg.Encode(buf, img, nil)
}
