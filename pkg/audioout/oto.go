package audioout

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// otoFormatFloat32 selects oto's 32-bit float LE format.
const otoFormatFloat32 = 0

// stereoFrameBytes is the byte width of one interleaved float32 frame.
const stereoFrameBytes = 8

// otoSink plays through the system audio device via oto. oto owns the
// device thread and pulls samples through an io.Reader, which matches the
// renderer contract directly.
type otoSink struct {
	cfg    Config
	logger *slog.Logger

	ctx    *oto.Context
	player oto.Player
	stream *pullStream

	mu      sync.Mutex
	started bool
	closed  bool
}

func newOtoSink(cfg Config, r Renderer, logger *slog.Logger) (*otoSink, error) {
	ctx, ready, err := oto.NewContext(cfg.SampleRate, 2, otoFormatFloat32)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}

	// Wait for the device once at init; after this the render path never
	// waits on anything.
	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		return nil, fmt.Errorf("audio device not ready")
	}

	stream := newPullStream(r, cfg.BufferFrames())
	s := &otoSink{
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		stream: stream,
		player: ctx.NewPlayer(stream),
	}
	return s, nil
}

func (s *otoSink) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("sink closed")
	}
	if s.started {
		return nil
	}
	s.stream.setEnabled(true)
	s.player.Play()
	s.started = true
	s.logger.Info("audio sink started",
		"backend", BackendOto,
		"sample_rate", s.cfg.SampleRate,
		"buffer_ms", s.cfg.BufferDuration.Milliseconds(),
	)
	return nil
}

func (s *otoSink) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return nil
	}
	// Gate the stream first: once setEnabled(false) returns, any
	// in-flight render call has completed and no new one will begin.
	s.stream.setEnabled(false)
	s.player.Pause()
	s.started = false
	return nil
}

func (s *otoSink) Config() Config { return s.cfg }
func (s *otoSink) Name() string   { return string(BackendOto) }

func (s *otoSink) Close() error {
	if err := s.Stop(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.player.Close()
}

// pullStream adapts a Renderer to the io.Reader oto pulls from, encoding
// float64 samples as float32 LE. While disabled it yields silence without
// touching the renderer, so teardown can fence the render path.
type pullStream struct {
	mu       sync.Mutex
	enabled  bool
	renderer Renderer
	scratch  []float64
}

func newPullStream(r Renderer, maxFrames int) *pullStream {
	return &pullStream{
		renderer: r,
		scratch:  make([]float64, maxFrames*2),
	}
}

func (ps *pullStream) setEnabled(on bool) {
	ps.mu.Lock()
	ps.enabled = on
	ps.mu.Unlock()
}

func (ps *pullStream) Read(p []byte) (int, error) {
	n := len(p) - len(p)%stereoFrameBytes
	if n == 0 {
		return 0, nil
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	if !ps.enabled {
		for i := 0; i < n; i++ {
			p[i] = 0
		}
		return n, nil
	}

	written := 0
	for written < n {
		chunk := (n - written) / stereoFrameBytes * 2
		if chunk > len(ps.scratch) {
			chunk = len(ps.scratch)
		}
		buf := ps.scratch[:chunk]
		ps.renderer.RenderStereo(buf)
		for _, s := range buf {
			v := math.Float32bits(float32(s))
			p[written] = byte(v)
			p[written+1] = byte(v >> 8)
			p[written+2] = byte(v >> 16)
			p[written+3] = byte(v >> 24)
			written += 4
		}
	}
	return written, nil
}
