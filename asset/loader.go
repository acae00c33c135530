// Package asset loads image assets into demofx buffers.
//
// Decoding goes through the standard image registry: PNG, JPEG and GIF
// from the standard library plus BMP from golang.org/x/image. A load
// failure is fatal for the effect that requested it, never for the
// process; callers propagate the error from Initialize.
package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"

	"github.com/patriksporre/demofx"
)

// ErrEmptyPath is returned when Load is called with an empty path.
var ErrEmptyPath = errors.New("asset: empty path")

// Load reads and decodes the image at path into a buffer. The context is
// consulted before the file is touched so a canceled initialization
// never starts the read.
func Load(ctx context.Context, path string) (*demofx.Buffer, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("asset: load %s: %w", path, err)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("asset: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: load %s: %w", path, err)
	}
	demofx.Logger().Info("asset loaded", "path", path, "width", b.Width(), "height", b.Height())
	return b, nil
}

// Decode decodes an image from the reader, auto-detecting the format.
func Decode(r io.Reader) (*demofx.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("asset: decode: %w", err)
	}
	return demofx.FromImage(img), nil
}
