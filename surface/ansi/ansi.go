// Package ansi presents frames as true-color escape sequences on any
// io.Writer. Each character cell shows two vertically stacked pixels
// through the upper half block, the foreground carrying the upper pixel
// and the background the lower one, so a cols x rows terminal displays a
// cols x 2*rows frame. Every cell is written with a combined SGR so no
// color state leaks between cells or frames.
//
// The writer never queries the terminal; sizing is the caller's problem,
// which is what makes the package usable over SSH sessions and in tests.
package ansi

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/patriksporre/demofx"
)

// Escape sequences shared by the frame writer.
const (
	esc   = "\x1b"
	csi   = esc + "["
	reset = csi + "0m"

	home             = csi + "H"
	clearScreen      = csi + "2J"
	hideCursor       = csi + "?25l"
	showCursor       = csi + "?25h"
	enableAltScreen  = csi + "?1049h"
	disableAltScreen = csi + "?1049l"
)

// halfBlock is the upper half block; foreground paints the upper pixel,
// background the lower.
const halfBlock = '▀'

// Surface writes frames to an io.Writer as escape sequences.
type Surface struct {
	w      io.Writer
	cols   int
	rows   int
	alt    bool
	opened bool
	sb     strings.Builder
}

// Option configures a Surface during creation.
type Option func(*Surface)

// WithAltScreen switches the terminal to the alternate screen buffer on
// the first frame and restores it on Close.
func WithAltScreen() Option {
	return func(s *Surface) {
		s.alt = true
	}
}

// New creates a surface writing cols x rows character cells to w. The
// pixel dimensions are cols wide and 2*rows tall.
func New(w io.Writer, cols, rows int, opts ...Option) *Surface {
	s := &Surface{w: w, cols: cols, rows: rows}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size returns the pixel dimensions of a frame.
func (s *Surface) Size() (int, int) {
	return s.cols, s.rows * 2
}

// Present writes one frame. The terminal setup sequence goes out ahead
// of the first frame; each frame starts from the home position so
// successive frames overwrite in place.
func (s *Surface) Present(b *demofx.Buffer) error {
	if b.Width() != s.cols || b.Height() != s.rows*2 {
		return fmt.Errorf("ansi: buffer %dx%d does not fit surface %dx%d",
			b.Width(), b.Height(), s.cols, s.rows*2)
	}

	s.sb.Reset()
	if !s.opened {
		if s.alt {
			s.sb.WriteString(enableAltScreen)
		}
		s.sb.WriteString(hideCursor)
		s.sb.WriteString(clearScreen)
		s.opened = true
	}
	s.sb.WriteString(home)

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			upper, _ := b.GetPixel(col, row*2, false)
			lower, _ := b.GetPixel(col, row*2+1, false)
			writeCell(&s.sb, upper, lower)
		}
		s.sb.WriteString(reset)
		if row < s.rows-1 {
			s.sb.WriteString("\r\n")
		}
	}

	if _, err := io.WriteString(s.w, s.sb.String()); err != nil {
		return fmt.Errorf("ansi: write frame: %w", err)
	}
	return nil
}

// Close restores the terminal state set up by the first Present.
func (s *Surface) Close() error {
	if !s.opened {
		return nil
	}
	s.sb.Reset()
	s.sb.WriteString(reset)
	s.sb.WriteString(showCursor)
	if s.alt {
		s.sb.WriteString(disableAltScreen)
	}
	if _, err := io.WriteString(s.w, s.sb.String()); err != nil {
		return fmt.Errorf("ansi: restore terminal: %w", err)
	}
	return nil
}

// writeCell writes one half-block cell with a combined SGR: foreground
// from the upper pixel, background from the lower.
func writeCell(sb *strings.Builder, upper, lower demofx.Color) {
	sb.WriteString(csi + "0;38;2;")
	sb.WriteString(strconv.Itoa(int(upper.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(upper.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(upper.B)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(lower.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(lower.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(lower.B)))
	sb.WriteByte('m')
	sb.WriteRune(halfBlock)
}
