package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Per-agent write lock. Progression updates are read-modify-write over
// the agent's stats and progress rows, so two in-flight interactions
// for the same agent would race and lose one update. Mutating handlers
// take this lock around the whole cycle to serialize writers per agent.

const (
	lockKeyFmt    = "lock:agent:%s"
	lockTTL       = 5 * time.Second
	lockRetryWait = 50 * time.Millisecond
	lockMaxWait   = 2 * time.Second
)

// AcquireAgentLock blocks until the per-agent lock is taken or the
// maximum wait elapses. The returned release function is safe to call
// once.
func AcquireAgentLock(ctx context.Context, rdb *redis.Client, agentID string) (func(), error) {
	key := fmt.Sprintf(lockKeyFmt, agentID)
	token := uuid.New().String()
	deadline := time.Now().Add(lockMaxWait)

	for {
		ok, err := rdb.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("agent lock: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("agent %s is busy", agentID)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}

	release := func() {
		// Only delete the lock if we still own it
		val, err := rdb.Get(context.Background(), key).Result()
		if err == nil && val == token {
			rdb.Del(context.Background(), key)
		}
	}
	return release, nil
}
