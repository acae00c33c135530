package demofx

// Surface is a presentation surface: anything that can accept a packed
// pixel buffer of known dimensions and display it. Implementations live
// in the surface/ subpackages (terminal, ANSI writer, window, PNG
// sequence); the core only ever calls Present once per frame after
// rendering completes.
type Surface interface {
	// Size returns the pixel dimensions the surface expects.
	Size() (width, height int)

	// Present displays the buffer. The surface must not retain the
	// buffer past the call.
	Present(b *Buffer) error

	// Close releases the surface. Present must not be called after
	// Close.
	Close() error
}
