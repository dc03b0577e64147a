package factory

import (
	"github.com/darius04/testfiles/internal/adapters/archive"
	"github.com/darius04/testfiles/internal/adapters/code"
	"github.com/darius04/testfiles/internal/adapters/document"
	imagebuilder "github.com/darius04/testfiles/internal/adapters/image"
	"github.com/darius04/testfiles/internal/adapters/misc"
	"github.com/darius04/testfiles/internal/adapters/text"
	"github.com/darius04/testfiles/internal/ports"
)

// NewStaticBuilderSet returns the fixture builders in their fixed run order.
// The renderer decides how the image builder produces its files; everything
// else is constant.
func NewStaticBuilderSet(renderer ports.Renderer) []ports.Builder {
	return []ports.Builder{
		text.New(),
		imagebuilder.New(renderer),
		document.New(),
		archive.New(),
		code.New(),
		misc.New(),
	}
}
