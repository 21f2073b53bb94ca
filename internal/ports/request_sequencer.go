package ports

import "context"

// Issues monotonically increasing request tokens per client session so that
// late responses to superseded requests can be detected.
type RequestSequencer interface {
	// Issue the next token for session.
	Next(ctx context.Context, session string) (uint64, error)
	// Return the most recently issued token for session (0 when none).
	Latest(ctx context.Context, session string) (uint64, error)
}
