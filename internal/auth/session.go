package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyFmt = "session:%d"

// SessionTTL is the inactivity timeout; the middleware refreshes it on
// every authenticated request.
const SessionTTL = 30 * time.Minute

func SetSession(rdb *redis.Client, userId uint, token string, duration time.Duration) error {
	key := fmt.Sprintf(sessionKeyFmt, userId)
	return rdb.Set(context.Background(), key, token, duration).Err()
}

func GetSession(rdb *redis.Client, userId uint) (string, error) {
	key := fmt.Sprintf(sessionKeyFmt, userId)
	return rdb.Get(context.Background(), key).Result()
}

func DeleteSession(rdb *redis.Client, userId uint) error {
	key := fmt.Sprintf(sessionKeyFmt, userId)
	return rdb.Del(context.Background(), key).Err()
}
