package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DashboardView = "dashboard"
	OrdersView    = "orders"
)

// ViewStateRepository keeps the last state of a customer's view between
// requests.
type ViewStateRepository interface {
	Load(ctx context.Context, userID int, view string, dst any) (bool, error)
	Save(ctx context.Context, userID int, view string, state any) error
	Delete(ctx context.Context, userID int, view string) error
}

func viewStateKey(userID int, view string) string {
	return fmt.Sprintf("customer_portal:view:%d:%s", userID, view)
}

// NewViewStateRepository uses redis when a client is available and falls
// back to process memory otherwise.
func NewViewStateRepository(client *redis.Client, ttl time.Duration) ViewStateRepository {
	if client == nil {
		return NewMemoryViewStateRepository(ttl)
	}
	return NewRedisViewStateRepository(client, ttl)
}

type RedisViewStateRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisViewStateRepository(client *redis.Client, ttl time.Duration) *RedisViewStateRepository {
	return &RedisViewStateRepository{client: client, ttl: ttl}
}

func (r *RedisViewStateRepository) Load(ctx context.Context, userID int, view string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, viewStateKey(userID, view)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s view state: %w", view, err)
	}
	return true, nil
}

func (r *RedisViewStateRepository) Save(ctx context.Context, userID int, view string, state any) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s view state: %w", view, err)
	}
	return r.client.Set(ctx, viewStateKey(userID, view), data, r.ttl).Err()
}

func (r *RedisViewStateRepository) Delete(ctx context.Context, userID int, view string) error {
	return r.client.Del(ctx, viewStateKey(userID, view)).Err()
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type MemoryViewStateRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryViewStateRepository(ttl time.Duration) *MemoryViewStateRepository {
	return &MemoryViewStateRepository{
		ttl:     ttl,
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (r *MemoryViewStateRepository) Load(_ context.Context, userID int, view string, dst any) (bool, error) {
	key := viewStateKey(userID, view)

	r.mu.Lock()
	entry, ok := r.entries[key]
	if ok && !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		delete(r.entries, key)
		ok = false
	}
	r.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dst); err != nil {
		return false, fmt.Errorf("decode %s view state: %w", view, err)
	}
	return true, nil
}

func (r *MemoryViewStateRepository) Save(_ context.Context, userID int, view string, state any) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s view state: %w", view, err)
	}

	entry := memoryEntry{data: data}
	if r.ttl > 0 {
		entry.expiresAt = r.now().Add(r.ttl)
	}

	r.mu.Lock()
	r.entries[viewStateKey(userID, view)] = entry
	r.mu.Unlock()
	return nil
}

func (r *MemoryViewStateRepository) Delete(_ context.Context, userID int, view string) error {
	r.mu.Lock()
	delete(r.entries, viewStateKey(userID, view))
	r.mu.Unlock()
	return nil
}
