package progress

import (
	"fmt"
	"testing"
	"time"

	"promoreel/internal/domain/repositories"
)

func TestSlogSink_EmitNeverBlocks(t *testing.T) {
	sink := NewSlogSink(4)

	// Far more events than the buffer holds; overflow must be dropped, not
	// block the caller.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			sink.Emit(repositories.LevelInfo, fmt.Sprintf("event %d", i))
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}

	sink.Close()
}

func TestSlogSink_EmitAfterClose(t *testing.T) {
	sink := NewSlogSink(4)
	sink.Close()

	// Dropped silently, never a send on a closed channel.
	sink.Emit(repositories.LevelInfo, "late event")
	sink.Close()
}

func TestSlogSink_CloseDrains(t *testing.T) {
	sink := NewSlogSink(16)
	sink.Emit(repositories.LevelSuccess, "done")

	finished := make(chan struct{})
	go func() {
		sink.Close()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return after draining")
	}
}
