// Command demofx runs the effect show on a presentation surface: the
// controlling terminal by default, a desktop window, a raw ANSI stream,
// or a PNG frame sequence.
//
// Usage:
//
//	demofx                          run in the terminal
//	demofx -list                    print effect names
//	demofx -effect fire             start on a specific effect
//	demofx -window -size 320x200    run in a window
//	demofx -ansi                    stream escape sequences to stdout
//	demofx -out frames -frames 300  capture 300 PNG frames
//
// Keys: q quits, n or space advances to the next effect, 1-9 selects a
// variant on effects that have them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/patriksporre/demofx"
	"github.com/patriksporre/demofx/effect"
	"github.com/patriksporre/demofx/surface/ansi"
	"github.com/patriksporre/demofx/surface/imgseq"
	termsurface "github.com/patriksporre/demofx/surface/term"
	"github.com/patriksporre/demofx/surface/window"
)

func main() {
	var (
		effectName = flag.String("effect", "", "effect to start on (default: first registered)")
		fps        = flag.Float64("fps", demofx.DefaultFPS, "target frame rate")
		size       = flag.String("size", "320x200", "frame size for -window and -out")
		list       = flag.Bool("list", false, "print effect names and exit")
		useWindow  = flag.Bool("window", false, "present in a desktop window")
		useANSI    = flag.Bool("ansi", false, "stream ANSI escape sequences to stdout")
		outDir     = flag.String("out", "", "capture PNG frames into this directory")
		frames     = flag.Int("frames", 300, "frame count for -out")
		verbose    = flag.Bool("v", false, "verbose logging to stderr")
	)
	flag.Parse()

	if *verbose {
		demofx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		r := demofx.NewRunner(nullSurface{})
		registerEffects(r)
		for _, name := range r.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := run(*effectName, *fps, *size, *useWindow, *useANSI, *outDir, *frames); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run picks the surface from the flags and drives the show on it.
func run(effectName string, fps float64, size string, useWindow, useANSI bool, outDir string, frames int) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case outDir != "":
		return runCapture(ctx, effectName, fps, size, outDir, frames)
	case useWindow:
		return runWindow(ctx, effectName, fps, size)
	case useANSI:
		return runANSI(ctx, effectName, fps)
	default:
		return runTerminal(ctx, effectName, fps)
	}
}

// registerEffects adds every effect in show order.
func registerEffects(r *demofx.Runner) {
	r.Add("plasma", effect.NewPlasma())
	r.Add("fire", effect.NewFire())
	r.Add("starfield", effect.NewStarfield(256))
	r.Add("bump", effect.NewBump())
	r.Add("zoom", effect.NewZoom())
	r.Add("rotozoom", effect.NewRotozoom())
	r.Add("twirl", effect.NewTwirl())
	r.Add("water", effect.NewWater())
	r.Add("metaballs", effect.NewMetaballs(5))
	r.Add("twister", effect.NewTwister())
}

// start builds a runner on s and selects the requested effect.
func start(ctx context.Context, s demofx.Surface, effectName string, fps float64, opts ...demofx.RunnerOption) (*demofx.Runner, error) {
	r := demofx.NewRunner(s, append(opts, demofx.WithFPS(fps))...)
	registerEffects(r)
	if effectName != "" {
		if err := r.Select(ctx, effectName); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func runTerminal(ctx context.Context, effectName string, fps float64) error {
	s, err := termsurface.New()
	if err != nil {
		return err
	}
	defer s.Close()

	r, err := start(ctx, s, effectName, fps, demofx.WithInput(s.Keys()))
	if err != nil {
		return err
	}
	return r.Run(ctx)
}

func runWindow(ctx context.Context, effectName string, fps float64, size string) error {
	w, h, err := parseSize(size)
	if err != nil {
		return err
	}
	s := window.New(w, h, window.WithTitle("demofx"))

	r, err := start(ctx, s, effectName, fps, demofx.WithInput(s.Keys()))
	if err != nil {
		return err
	}

	// The render loop runs concurrently; ebiten needs the main
	// goroutine for the window loop. Closing the window cancels the
	// runner, quitting the runner closes the window.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errc := make(chan error, 1)
	go func() {
		errc <- r.Run(ctx)
		s.Close()
	}()
	runErr := s.Run()
	cancel()
	if err := <-errc; err != nil {
		return err
	}
	return runErr
}

func runANSI(ctx context.Context, effectName string, fps float64) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("demofx: stdout is not a terminal, -ansi needs one")
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("demofx: terminal size: %w", err)
	}

	// Raw mode so single keypresses arrive immediately.
	inFd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("demofx: raw mode: %w", err)
	}
	defer term.Restore(inFd, state)

	s := ansi.New(os.Stdout, cols, rows, ansi.WithAltScreen())
	defer s.Close()

	keys := make(chan rune, 8)
	go readKeys(os.Stdin, keys)

	r, err := start(ctx, s, effectName, fps, demofx.WithInput(keys))
	if err != nil {
		return err
	}
	return r.Run(ctx)
}

func runCapture(ctx context.Context, effectName string, fps float64, size, outDir string, frames int) error {
	w, h, err := parseSize(size)
	if err != nil {
		return err
	}
	seq, err := imgseq.New(outDir, w, h)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s := &limitSurface{Surface: seq, limit: frames, cancel: cancel}

	r, err := start(ctx, s, effectName, fps)
	if err != nil {
		return err
	}
	if err := r.Run(ctx); err != nil {
		return err
	}
	fmt.Printf("captured %d frames in %s\n", seq.Count(), outDir)
	return nil
}

// limitSurface stops the capture run after a fixed number of frames.
type limitSurface struct {
	*imgseq.Surface
	limit  int
	cancel context.CancelFunc
}

func (s *limitSurface) Present(b *demofx.Buffer) error {
	if err := s.Surface.Present(b); err != nil {
		return err
	}
	if s.Count() >= s.limit {
		s.cancel()
	}
	return nil
}

// readKeys feeds raw stdin bytes into the runner's key channel,
// mapping Escape and Ctrl-C to the quit key.
func readKeys(f *os.File, keys chan<- rune) {
	buf := make([]byte, 64)
	for {
		n, err := f.Read(buf)
		if err != nil {
			return
		}
		data := buf[:n]
		for len(data) > 0 {
			r, size := utf8.DecodeRune(data)
			data = data[size:]
			if r == 0x1b || r == 3 {
				r = 'q'
			}
			select {
			case keys <- r:
			default:
			}
		}
	}
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("demofx: bad size %q, want WxH", s)
	}
	return w, h, nil
}

// nullSurface satisfies the surface interface for -list, where nothing
// is ever presented.
type nullSurface struct{}

func (nullSurface) Size() (int, int)             { return 1, 2 }
func (nullSurface) Present(*demofx.Buffer) error { return nil }
func (nullSurface) Close() error                 { return nil }
