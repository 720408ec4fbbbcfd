package audioout

import (
	"fmt"
	"log/slog"
)

// New creates a sink for the given configuration, pulling from r. If
// cfg.Backend is BackendAuto the real device is used.
//
// A device open failure is terminal for the subsystem: the caller reports
// it once and goes inert. There is no automatic retry.
func New(cfg Config, r Renderer, logger *slog.Logger) (Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	backend := cfg.Backend
	if backend == BackendAuto {
		backend = BackendOto
	}

	logger.Info("creating audio sink",
		"backend", backend,
		"sample_rate", cfg.SampleRate,
		"buffer_ms", cfg.BufferDuration.Milliseconds(),
	)

	switch backend {
	case BackendMock:
		return NewMockSink(cfg, r, logger), nil
	case BackendOto:
		return newOtoSink(cfg, r, logger)
	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}
}
