package ansi

import (
	"strings"
	"testing"

	"github.com/patriksporre/demofx"
)

// TestSurfaceSize verifies the pixel height is twice the row count.
func TestSurfaceSize(t *testing.T) {
	s := New(&strings.Builder{}, 80, 25)
	w, h := s.Size()
	if w != 80 || h != 50 {
		t.Errorf("Size() = %dx%d, want 80x50", w, h)
	}
}

// TestPresentRejectsWrongDimensions verifies a mis-sized buffer is
// refused instead of silently cropped.
func TestPresentRejectsWrongDimensions(t *testing.T) {
	s := New(&strings.Builder{}, 4, 2)
	b := demofx.NewBuffer(4, 3, demofx.Black)
	if err := s.Present(b); err == nil {
		t.Fatal("Present accepted a buffer of the wrong height")
	}
}

// TestPresentCellEncoding verifies each cell carries the upper pixel as
// foreground and the lower pixel as background in one combined SGR.
func TestPresentCellEncoding(t *testing.T) {
	var out strings.Builder
	s := New(&out, 1, 1)

	b := demofx.NewBuffer(1, 2, demofx.Black)
	b.SetPixel(0, 0, demofx.RGB(10, 20, 30), true)
	b.SetPixel(0, 1, demofx.RGB(40, 50, 60), true)
	if err := s.Present(b); err != nil {
		t.Fatalf("Present: %v", err)
	}

	want := "\x1b[0;38;2;10;20;30;48;2;40;50;60m▀"
	if !strings.Contains(out.String(), want) {
		t.Errorf("frame %q missing cell %q", out.String(), want)
	}
}

// TestPresentSetupOnlyOnce verifies cursor hiding and the screen clear
// go out with the first frame only.
func TestPresentSetupOnlyOnce(t *testing.T) {
	var out strings.Builder
	s := New(&out, 2, 2)
	b := demofx.NewBuffer(2, 4, demofx.Black)

	if err := s.Present(b); err != nil {
		t.Fatalf("first Present: %v", err)
	}
	if err := s.Present(b); err != nil {
		t.Fatalf("second Present: %v", err)
	}

	if got := strings.Count(out.String(), hideCursor); got != 1 {
		t.Errorf("hide-cursor sequence written %d times, want 1", got)
	}
	if got := strings.Count(out.String(), home); got < 2 {
		t.Errorf("home sequence written %d times, want one per frame", got)
	}
}

// TestCloseRestoresTerminal verifies Close reverses the alt-screen and
// cursor state after a frame went out.
func TestCloseRestoresTerminal(t *testing.T) {
	var out strings.Builder
	s := New(&out, 2, 1, WithAltScreen())
	b := demofx.NewBuffer(2, 2, demofx.Black)

	if err := s.Present(b); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !strings.Contains(out.String(), enableAltScreen) {
		t.Error("alt screen never enabled")
	}
	if !strings.Contains(out.String(), disableAltScreen) {
		t.Error("alt screen not restored on Close")
	}
	if !strings.Contains(out.String(), showCursor) {
		t.Error("cursor not restored on Close")
	}
}

// TestCloseBeforeFirstFrame verifies closing an unused surface writes
// nothing.
func TestCloseBeforeFirstFrame(t *testing.T) {
	var out strings.Builder
	s := New(&out, 2, 1)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Close on unused surface wrote %q", out.String())
	}
}
