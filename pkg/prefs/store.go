package prefs

import (
	"context"
	"fmt"
	"sync"

	"github.com/matzehuels/wristscale/pkg/errors"
)

// Store persists string preferences by key.
type Store interface {
	// Get returns the value for key. ok is false when no value is stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
	// Close releases backend resources.
	Close() error
}

// Backend names a Store implementation in configuration.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

// Config selects and configures a backend.
type Config struct {
	Backend       Backend `toml:"backend"`
	Dir           string  `toml:"dir"`
	RedisAddr     string  `toml:"redis_addr"`
	RedisPassword string  `toml:"redis_password"`
	RedisDB       int     `toml:"redis_db"`
}

// Open builds the store described by cfg. An empty backend selects the
// file store.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendFile:
		s, err := NewFileStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendRedis:
		s, err := NewRedisStore(ctx, RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown prefs backend %q", cfg.Backend)
	}
}

// MemoryStore keeps preferences in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("empty preference key")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Close() error { return nil }

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
	_ Store = (*RedisStore)(nil)
)
