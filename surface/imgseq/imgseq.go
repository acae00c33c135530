// Package imgseq presents frames as a numbered PNG sequence on disk,
// one file per Present. Useful for capturing reference output and for
// assembling video with external tools.
package imgseq

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/patriksporre/demofx"
)

// Surface writes each presented frame to dir as frame-NNNNNN.png.
type Surface struct {
	dir    string
	width  int
	height int
	count  int
}

// New creates the output directory if needed and returns a surface of
// the given pixel dimensions.
func New(dir string, width, height int) (*Surface, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("imgseq: create %s: %w", dir, err)
	}
	return &Surface{dir: dir, width: width, height: height}, nil
}

// Size returns the pixel dimensions of a frame.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Present writes the next frame in the sequence.
func (s *Surface) Present(b *demofx.Buffer) error {
	name := filepath.Join(s.dir, fmt.Sprintf("frame-%06d.png", s.count))
	if err := b.SavePNG(name); err != nil {
		return fmt.Errorf("imgseq: %w", err)
	}
	s.count++
	return nil
}

// Count returns the number of frames written so far.
func (s *Surface) Count() int {
	return s.count
}

// Close is a no-op; every frame is flushed as it is written.
func (s *Surface) Close() error {
	return nil
}
