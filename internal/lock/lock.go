// Package lock provides a best-effort distributed mutex for scheduled jobs.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotAcquired means another holder owns the lock.
var ErrNotAcquired = errors.New("lock held by another process")

// Locker acquires a named lease. The returned release func is safe to call once.
type Locker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (release func(context.Context) error, err error)
}

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements Locker with SET NX PX.
type RedisLocker struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{client: client, prefix: "lock:"}
}

func (l *RedisLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (func(context.Context) error, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	key := l.prefix + name

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	return func(ctx context.Context) error {
		return releaseScript.Run(ctx, l.client, []string{key}, token).Err()
	}, nil
}

// NoopLocker always succeeds. Used when Redis is not configured.
type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, string, time.Duration) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
