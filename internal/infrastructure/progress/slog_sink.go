package progress

import (
	"log/slog"
	"sync"

	"promoreel/internal/domain/repositories"
)

type event struct {
	level   repositories.ProgressLevel
	message string
}

// SlogSink forwards pipeline progress to slog from a separate goroutine.
// Emit never blocks or panics: when the buffer is full, or the sink is
// already closed, the event is dropped, because a slow log consumer must
// not stall a model call.
type SlogSink struct {
	events chan event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewSlogSink(buffer int) *SlogSink {
	if buffer <= 0 {
		buffer = 64
	}

	s := &SlogSink{
		events: make(chan event, buffer),
		done:   make(chan struct{}),
	}
	go s.drain()
	return s
}

func (s *SlogSink) Emit(level repositories.ProgressLevel, message string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	select {
	case s.events <- event{level: level, message: message}:
	default:
	}
}

// Close stops the drain goroutine after the buffered events are written.
// Safe to call more than once; later Emits are silently dropped.
func (s *SlogSink) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.events)
	s.mu.Unlock()

	<-s.done
}

func (s *SlogSink) drain() {
	defer close(s.done)
	for e := range s.events {
		switch e.level {
		case repositories.LevelError:
			slog.Error(e.message, "stage", "pipeline")
		case repositories.LevelWarning:
			slog.Warn(e.message, "stage", "pipeline")
		default:
			slog.Info(e.message, "stage", "pipeline", "level", string(e.level))
		}
	}
}
