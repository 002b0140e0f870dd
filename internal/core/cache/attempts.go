package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// AttemptCounter tracks failed login attempts per key (client IP).
// Backed by redis when configured so the limit holds across replicas;
// falls back to an in-process map otherwise.
type AttemptCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}

type RedisCounter struct {
	RDB *redis.Client
}

func NewRedisCounter(addr, pass string, db int) *RedisCounter {
	return &RedisCounter{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.RDB.TxPipeline()
	incr := pipe.Incr(ctx, "login_attempts:"+key)
	pipe.Expire(ctx, "login_attempts:"+key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (c *RedisCounter) Reset(ctx context.Context, key string) error {
	return c.RDB.Del(ctx, "login_attempts:"+key).Err()
}

type memEntry struct {
	count   int64
	expires time.Time
}

type MemCounter struct {
	mu sync.Mutex
	m  map[string]*memEntry
}

func NewMemCounter() *MemCounter {
	return &MemCounter{m: make(map[string]*memEntry)}
}

func (c *MemCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok || time.Now().After(e.expires) {
		e = &memEntry{expires: time.Now().Add(window)}
		c.m[key] = e
	}
	e.count++
	return e.count, nil
}

func (c *MemCounter) Reset(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
	return nil
}
