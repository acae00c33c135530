package demofx

import (
	"context"
	"fmt"
	"time"
)

// DefaultFPS is the frame rate used when no WithFPS option is given.
const DefaultFPS = 60.0

// Runner is the frame scheduler: a fixed-rate loop that initializes each
// effect once, calls Render every tick with elapsed and delta seconds,
// and hands the buffer to the presentation surface. Key input, when
// wired, cycles effects and switches variants.
type Runner struct {
	surface Surface
	fps     float64
	input   <-chan rune

	names   []string
	effects []Effect
	active  int
	ready   []bool

	buf     *Buffer
	started time.Time
	last    time.Time
}

// RunnerOption configures a Runner during creation.
type RunnerOption func(*Runner)

// WithFPS sets the target frame rate.
func WithFPS(fps float64) RunnerOption {
	return func(r *Runner) {
		if fps > 0 {
			r.fps = fps
		}
	}
}

// WithInput wires a channel of key runes into the runner. Digits select
// the matching variant on the active effect, 'n' and space advance to the
// next effect, 'q' stops the loop.
func WithInput(keys <-chan rune) RunnerOption {
	return func(r *Runner) {
		r.input = keys
	}
}

// NewRunner creates a runner presenting to the given surface.
func NewRunner(s Surface, opts ...RunnerOption) *Runner {
	r := &Runner{
		surface: s,
		fps:     DefaultFPS,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers an effect under a name. Effects render in registration
// order when cycling.
func (r *Runner) Add(name string, e Effect) {
	r.names = append(r.names, name)
	r.effects = append(r.effects, e)
	r.ready = append(r.ready, false)
}

// Names returns the registered effect names in order.
func (r *Runner) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Select activates the effect registered under name. The effect is
// initialized on first activation.
func (r *Runner) Select(ctx context.Context, name string) error {
	for i, n := range r.names {
		if n == name {
			return r.activate(ctx, i)
		}
	}
	return fmt.Errorf("runner: unknown effect %q", name)
}

// activate switches to effect i, initializing it the first time.
func (r *Runner) activate(ctx context.Context, i int) error {
	if len(r.effects) == 0 {
		return fmt.Errorf("runner: no effects registered")
	}
	i %= len(r.effects)
	if !r.ready[i] {
		w, h := r.surface.Size()
		if err := r.effects[i].Initialize(ctx, w, h); err != nil {
			return fmt.Errorf("runner: initialize %q: %w", r.names[i], err)
		}
		r.ready[i] = true
		Logger().Info("effect initialized", "name", r.names[i], "width", w, "height", h)
	}
	r.active = i
	Logger().Debug("effect active", "name", r.names[i])
	return nil
}

// Run drives the loop until the context is canceled or a 'q' key
// arrives. It allocates the frame buffer, initializes the active effect,
// then renders and presents at the target rate. A canceled context is a
// normal stop, not an error.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.activate(ctx, r.active); err != nil {
		return err
	}
	w, h := r.surface.Size()
	r.buf = NewBuffer(w, h, Black)
	r.started = time.Now()
	r.last = r.started

	ticker := time.NewTicker(time.Duration(float64(time.Second) / r.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case key := <-r.input:
			quit, err := r.handleKey(ctx, key)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case now := <-ticker.C:
			if err := r.frame(now); err != nil {
				return err
			}
		}
	}
}

// frame renders the active effect into the buffer and presents it.
func (r *Runner) frame(now time.Time) error {
	elapsed := now.Sub(r.started).Seconds()
	delta := now.Sub(r.last).Seconds()
	r.last = now
	r.effects[r.active].Render(r.buf, elapsed, delta)
	if err := r.buf.Present(r.surface); err != nil {
		return fmt.Errorf("runner: present: %w", err)
	}
	return nil
}

// handleKey reacts to a single key rune. It reports whether the loop
// should stop.
func (r *Runner) handleKey(ctx context.Context, key rune) (bool, error) {
	switch {
	case key == 'q':
		return true, nil
	case key == 'n' || key == ' ':
		return false, r.activate(ctx, r.active+1)
	case key >= '1' && key <= '9':
		if vs, ok := r.effects[r.active].(VariantSwitcher); ok {
			vs.SetVariant(int(key - '1'))
			Logger().Debug("variant switched", "name", r.names[r.active], "variant", vs.Variant())
		}
	}
	return false, nil
}
