package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "nav:seq:"

// RedisSequencer shares per-session counters across server instances.
// Counters expire ttl after the last Next call.
type RedisSequencer struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisSequencer(client redis.UniversalClient, ttl time.Duration) (*RedisSequencer, error) {
	if client == nil {
		return nil, errors.New("redis sequencer: client is nil")
	}
	if ttl <= 0 {
		return nil, errors.New("redis sequencer: ttl must be positive")
	}
	return &RedisSequencer{client: client, ttl: ttl}, nil
}

func (s *RedisSequencer) Next(ctx context.Context, session string) (uint64, error) {
	if session == "" {
		return 0, errors.New("redis sequencer: session must not be empty")
	}

	key := keyPrefix + session

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		p.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("redis sequencer next %q: %w", session, err)
	}

	return uint64(incr.Val()), nil
}

func (s *RedisSequencer) Latest(ctx context.Context, session string) (uint64, error) {
	v, err := s.client.Get(ctx, keyPrefix+session).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis sequencer latest %q: %w", session, err)
	}
	return v, nil
}
