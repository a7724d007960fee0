package api

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
)

// CacheRepository stores serialized responses by key.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// CacheKey derives a stable key from an endpoint name and its decoded request.
func CacheKey(endpoint string, request any) (string, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return fmt.Sprintf("calc:%s:%016x", endpoint, xxhash.Sum64(b)), nil
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects lazily; the first command dials addr.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb, ttl: ttl}
}

// Ping checks that the server is reachable.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

type memoryEntry struct {
	value   string
	expires time.Time
}

const (
	memorySweepInterval = time.Minute
	// MaxMemoryEntries bounds the in-memory cache; a full cache drops an arbitrary entry per Set.
	MaxMemoryEntries = 10000
)

// MemoryCache is the in-process CacheRepository used when no Redis address is configured.
// A zero ttl keeps entries forever. Expired entries are swept every minute until Stop.
type MemoryCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	data     map[string]memoryEntry
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	m := &MemoryCache{
		ttl:  ttl,
		data: make(map[string]memoryEntry),
		now:  time.Now,
		stop: make(chan struct{}),
	}
	if ttl > 0 {
		go m.sweepLoop()
	}
	return m
}

func (m *MemoryCache) sweepLoop() {
	ticker := time.NewTicker(memorySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Purge()
		case <-m.stop:
			return
		}
	}
}

// Purge removes every expired entry and returns how many were dropped.
func (m *MemoryCache) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.purgeLocked(m.now())
}

func (m *MemoryCache) purgeLocked(now time.Time) int {
	dropped := 0
	for key, e := range m.data {
		if e.expired(now) {
			delete(m.data, key)
			dropped++
		}
	}
	return dropped
}

func (m *MemoryCache) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if e.expired(m.now()) {
		m.mu.Lock()
		// A Set may have refreshed the key since the read lock was released.
		if cur, ok := m.data[key]; ok && cur.expired(m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return e.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	now := m.now()
	e := memoryEntry{value: value}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; !exists && len(m.data) >= MaxMemoryEntries {
		if m.purgeLocked(now) == 0 {
			for victim := range m.data {
				delete(m.data, victim)
				break
			}
		}
	}
	m.data[key] = e
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
