package audioout

import "io"

// Renderer produces the next interleaved stereo buffer on demand. It must
// never block: the sink calls it from the audio timing context.
type Renderer interface {
	RenderStereo(dst []float64)
}

// Sink owns the output device lifecycle and repeatedly pulls buffers from
// its Renderer while started.
type Sink interface {
	// Start begins pulling from the renderer and playing audio.
	Start() error

	// Stop halts playback. The renderer is guaranteed not to be invoked
	// again after Stop returns, which makes it safe to release generator
	// state. Safe to call multiple times.
	Stop() error

	// Config returns the sink's audio configuration.
	Config() Config

	// Name returns the backend name ("oto", "mock").
	Name() string

	// Close releases the device. After Close the sink cannot be
	// restarted.
	io.Closer
}
