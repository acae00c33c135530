// Package window presents frames in a desktop window through ebiten.
//
// Ebiten owns the main loop, so the surface inverts control: Run blocks
// the calling goroutine on the window loop while the render loop runs
// elsewhere and hands frames over through Present. The window redraws
// the latest completed frame; if the renderer outpaces the display the
// intermediate frames are simply dropped.
package window

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/patriksporre/demofx"
)

// Surface shows frames in an ebiten window.
type Surface struct {
	width  int
	height int
	scale  int
	title  string

	mu    sync.Mutex
	frame []byte

	keys chan rune
	done chan struct{}
	once sync.Once
}

// Option configures a Surface during creation.
type Option func(*Surface)

// WithScale sets the integer window magnification.
func WithScale(scale int) Option {
	return func(s *Surface) {
		if scale > 0 {
			s.scale = scale
		}
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(s *Surface) {
		s.title = title
	}
}

// New creates a window surface with the given pixel dimensions.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		scale:  2,
		title:  "demofx",
		frame:  make([]byte, width*height*4),
		keys:   make(chan rune, 8),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size returns the pixel dimensions of a frame.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Present stores a copy of the frame for the next window draw.
func (s *Surface) Present(b *demofx.Buffer) error {
	if b.Width() != s.width || b.Height() != s.height {
		return fmt.Errorf("window: buffer %dx%d does not fit surface %dx%d",
			b.Width(), b.Height(), s.width, s.height)
	}
	s.mu.Lock()
	copy(s.frame, b.Bytes())
	s.mu.Unlock()
	return nil
}

// Keys returns the stream of pressed keys. Escape arrives as 'q'.
func (s *Surface) Keys() <-chan rune {
	return s.keys
}

// Close makes Run return on its next update.
func (s *Surface) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

// Run opens the window and blocks until it is closed. Must be called
// from the main goroutine; ebiten requires it on some platforms.
func (s *Surface) Run() error {
	ebiten.SetWindowSize(s.width*s.scale, s.height*s.scale)
	ebiten.SetWindowTitle(s.title)

	err := ebiten.RunGame(&game{surface: s})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// game adapts the surface to the ebiten game loop.
type game struct {
	surface *Surface
	chars   []rune
}

// Update forwards typed characters and checks for shutdown.
func (g *game) Update() error {
	select {
	case <-g.surface.done:
		return ebiten.Termination
	default:
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.deliver('q')
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.deliver(r)
	}
	return nil
}

// deliver pushes a key without blocking the game loop.
func (g *game) deliver(r rune) {
	select {
	case g.surface.keys <- r:
	default:
	}
}

// Draw blits the latest frame.
func (g *game) Draw(screen *ebiten.Image) {
	s := g.surface
	s.mu.Lock()
	screen.WritePixels(s.frame)
	s.mu.Unlock()
}

// Layout fixes the logical resolution at the frame size.
func (g *game) Layout(_, _ int) (int, int) {
	return g.surface.width, g.surface.height
}
