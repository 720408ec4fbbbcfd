package speech

import (
	"log/slog"
	"sync"
)

// QueueAnnouncer serializes announcements into a sink function on its own
// goroutine, so a slow TTS engine can never stall the control tick.
// Interrupt drops everything queued and jumps the line.
type QueueAnnouncer struct {
	sink   func(msg string)
	logger *slog.Logger

	mu      sync.Mutex
	queue   chan string
	closed  bool
	doneCh  chan struct{}
}

// NewQueueAnnouncer starts an announcer delivering to sink. The queue is
// bounded; when the speaker falls far enough behind, the oldest pending
// messages are dropped — a distance callout that is seconds stale is worse
// than none.
//
// The sink must tolerate concurrent invocation: Interrupt delivers on the
// caller's goroutine and may overlap a queued delivery already inside the
// sink. A TTS binding that requires serialized calls needs its own lock.
func NewQueueAnnouncer(sink func(msg string), logger *slog.Logger) *QueueAnnouncer {
	if logger == nil {
		logger = slog.Default()
	}
	q := &QueueAnnouncer{
		sink:   sink,
		logger: logger,
		queue:  make(chan string, 8),
		doneCh: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *QueueAnnouncer) run() {
	defer close(q.doneCh)
	for msg := range q.queue {
		q.sink(msg)
	}
}

// Say queues a message. Never blocks: if the queue is full the message is
// dropped with a warning.
func (q *QueueAnnouncer) Say(msg string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	select {
	case q.queue <- msg:
	default:
		q.logger.Warn("announcement queue full, dropping", "msg", msg)
	}
}

// Interrupt drains anything pending and delivers msg ahead of the queue,
// on the caller's goroutine.
func (q *QueueAnnouncer) Interrupt(msg string) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	// Drain pending messages.
	for {
		select {
		case <-q.queue:
			continue
		default:
		}
		break
	}
	q.mu.Unlock()

	// Deliver directly; the run loop only sees what remains queued.
	q.sink(msg)
}

// Close stops the delivery goroutine after the queue drains.
func (q *QueueAnnouncer) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.queue)
	q.mu.Unlock()
	<-q.doneCh
}

// Recorder is an Announcer that records messages for tests.
type Recorder struct {
	mu         sync.Mutex
	Said       []string
	Interrupts []string
}

// Say records a queued message.
func (r *Recorder) Say(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Said = append(r.Said, msg)
}

// Interrupt records an interrupting message.
func (r *Recorder) Interrupt(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Interrupts = append(r.Interrupts, msg)
}

// All returns every recorded message in arrival order per class.
func (r *Recorder) All() (said, interrupts []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Said...), append([]string(nil), r.Interrupts...)
}
