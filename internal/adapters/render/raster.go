package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/darius04/testfiles/internal/ports"
)

// Canvas and overlay colors used by the two fixtures.
var (
	lightBlue  = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	darkBlue   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	lightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	darkGreen  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	green      = color.RGBA{R: 0, G: 128, B: 0, A: 255}
)

// Raster encodes genuine PNG/JPEG image data.
type Raster struct{}

func NewRaster() ports.Renderer {
	return &Raster{}
}

func (r *Raster) Real() bool { return true }

// RenderPNG draws the 400x300 landscape canvas: three caption lines, a red
// rectangle outline and a green ellipse outline.
func (r *Raster) RenderPNG(outPath string) error {
	img := newCanvas(400, 300, lightBlue)
	drawText(img, 50, 100, "Test Image", darkBlue)
	drawText(img, 50, 130, "File Organizer Pro", darkBlue)
	drawText(img, 50, 160, "Sample PNG File", darkBlue)
	drawRectOutline(img, image.Rect(50, 200, 150, 250), red, 3)
	drawEllipseOutline(img, image.Rect(200, 200, 300, 250), green, 3)

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return os.WriteFile(outPath, buf.Bytes(), 0666)
}

// RenderJPEG draws the smaller 300x200 canvas with two caption lines.
func (r *Raster) RenderJPEG(outPath string) error {
	img := newCanvas(300, 200, lightGreen)
	drawText(img, 50, 80, "JPEG Test File", darkGreen)
	drawText(img, 50, 110, "For File Organizer", darkGreen)

	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return os.WriteFile(outPath, buf.Bytes(), 0666)
}

func newCanvas(w, h int, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
		img.Pix[i+3] = bg.A
	}
	return img
}

func drawText(img *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// drawRectOutline strokes the rectangle border, width pixels thick, growing
// inward from r.
func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.RGBA, width int) {
	for i := 0; i < width; i++ {
		edge := r.Inset(i)
		if edge.Empty() {
			return
		}
		for x := edge.Min.X; x < edge.Max.X; x++ {
			img.SetRGBA(x, edge.Min.Y, c)
			img.SetRGBA(x, edge.Max.Y-1, c)
		}
		for y := edge.Min.Y; y < edge.Max.Y; y++ {
			img.SetRGBA(edge.Min.X, y, c)
			img.SetRGBA(edge.Max.X-1, y, c)
		}
	}
}

// drawEllipseOutline strokes the ellipse inscribed in r by filling the band
// between the inscribed ellipse and the one inset by width.
func drawEllipseOutline(img *image.RGBA, r image.Rectangle, c color.RGBA, width int) {
	inner := r.Inset(width)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if insideEllipse(x, y, r) && !insideEllipse(x, y, inner) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func insideEllipse(x, y int, r image.Rectangle) bool {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return false
	}
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	dx := (float64(x) + 0.5 - cx) / (float64(r.Dx()) / 2)
	dy := (float64(y) + 0.5 - cy) / (float64(r.Dy()) / 2)
	return dx*dx+dy*dy <= 1
}
