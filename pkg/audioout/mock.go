package audioout

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// MockSink drives the renderer from a ticker goroutine without any audio
// hardware. It keeps the last rendered buffer and frame counts so tests
// can assert on what would have been played.
type MockSink struct {
	cfg    Config
	logger *slog.Logger

	renderer Renderer

	mu      sync.Mutex
	running bool
	closed  bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	last    []float64

	framesRendered atomic.Int64
	renderCalls    atomic.Int64
}

// NewMockSink creates a mock sink pulling from r.
func NewMockSink(cfg Config, r Renderer, logger *slog.Logger) *MockSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockSink{
		cfg:      cfg,
		logger:   logger,
		renderer: r,
		last:     make([]float64, cfg.BufferFrames()*2),
	}
}

// Start begins pulling buffers on the configured cadence.
func (m *MockSink) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.running {
		return nil
	}
	m.running = true
	m.stopCh = make(chan struct{})
	m.doneCh = make(chan struct{})
	go m.pullLoop(m.stopCh, m.doneCh)
	m.logger.Debug("mock sink started", "buffer_frames", m.cfg.BufferFrames())
	return nil
}

func (m *MockSink) pullLoop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	ticker := time.NewTicker(m.cfg.BufferDuration)
	defer ticker.Stop()

	buf := make([]float64, m.cfg.BufferFrames()*2)
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			m.renderer.RenderStereo(buf)
			m.renderCalls.Add(1)
			m.framesRendered.Add(int64(len(buf) / 2))
			m.mu.Lock()
			copy(m.last, buf)
			m.mu.Unlock()
		}
	}
}

// Stop halts the pull loop and waits for any in-flight render to finish.
func (m *MockSink) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	stopCh, doneCh := m.stopCh, m.doneCh
	m.mu.Unlock()

	close(stopCh)
	<-doneCh
	return nil
}

func (m *MockSink) Config() Config { return m.cfg }
func (m *MockSink) Name() string   { return string(BackendMock) }

// Close stops the sink permanently.
func (m *MockSink) Close() error {
	if err := m.Stop(); err != nil {
		return err
	}
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

// PullOnce synchronously renders one buffer, bypassing the ticker. Handy
// for deterministic tests.
func (m *MockSink) PullOnce() []float64 {
	buf := make([]float64, m.cfg.BufferFrames()*2)
	m.renderer.RenderStereo(buf)
	m.renderCalls.Add(1)
	m.framesRendered.Add(int64(len(buf) / 2))
	return buf
}

// RenderCalls returns how many buffers have been pulled.
func (m *MockSink) RenderCalls() int64 { return m.renderCalls.Load() }

// FramesRendered returns the total frames pulled so far.
func (m *MockSink) FramesRendered() int64 { return m.framesRendered.Load() }

// LastBuffer returns a copy of the most recent buffer from the ticker
// loop.
func (m *MockSink) LastBuffer() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.last))
	copy(out, m.last)
	return out
}
