// Package term presents frames on the controlling terminal through
// tcell. Like the ansi writer it packs two pixels into each character
// cell with the upper half block, but it owns the terminal: it
// initializes the screen, hides the cursor, translates key events into
// runes and restores everything on Close.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/patriksporre/demofx"
)

const halfBlock = '▀'

// Surface drives a tcell screen. Create one with New, wire Keys into
// the runner, and Close when done.
type Surface struct {
	screen tcell.Screen
	cols   int
	rows   int
	keys   chan rune
	done   chan struct{}
}

// New initializes the terminal and starts the event loop. The pixel
// dimensions are fixed at the terminal size found at startup; resizes
// are ignored so effects keep a stable canvas.
func New() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return open(screen), nil
}

// open wraps an initialized screen. Split from New so tests can drive a
// simulation screen.
func open(screen tcell.Screen) *Surface {
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	s := &Surface{
		screen: screen,
		cols:   cols,
		rows:   rows,
		keys:   make(chan rune, 8),
		done:   make(chan struct{}),
	}
	go s.poll()

	demofx.Logger().Info("terminal surface opened", "cols", cols, "rows", rows)
	return s
}

// Size returns the pixel dimensions: one column per pixel horizontally,
// two pixels per row vertically.
func (s *Surface) Size() (int, int) {
	return s.cols, s.rows * 2
}

// Present draws the frame cell by cell and flips it to the terminal.
func (s *Surface) Present(b *demofx.Buffer) error {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			upper, _ := b.GetPixel(col, row*2, false)
			lower, _ := b.GetPixel(col, row*2+1, false)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			s.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Keys returns the stream of pressed keys. Escape and Ctrl-C arrive as
// 'q' so the runner's quit handling covers all three.
func (s *Surface) Keys() <-chan rune {
	return s.keys
}

// Close stops the event loop and restores the terminal.
func (s *Surface) Close() error {
	close(s.done)
	s.screen.Fini()
	return nil
}

// poll translates tcell events into key runes until Close. Fini unblocks
// PollEvent with a nil event, which also ends the loop.
func (s *Surface) poll() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		var r rune
		switch {
		case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
			r = 'q'
		case key.Key() == tcell.KeyRune:
			r = key.Rune()
		default:
			continue
		}

		select {
		case s.keys <- r:
		case <-s.done:
			return
		default:
			// Drop keys nobody is reading rather than stall the loop.
		}
	}
}
