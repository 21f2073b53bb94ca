package tokens

import (
	"context"
	"errors"
	"sync"
)

// MemorySequencer keeps per-session counters in process memory.
// Suitable for a single server instance.
type MemorySequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

func NewMemorySequencer() *MemorySequencer {
	return &MemorySequencer{latest: make(map[string]uint64)}
}

func (s *MemorySequencer) Next(ctx context.Context, session string) (uint64, error) {
	if session == "" {
		return 0, errors.New("memory sequencer: session must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest[session]++
	return s.latest[session], nil
}

func (s *MemorySequencer) Latest(ctx context.Context, session string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest[session], nil
}
