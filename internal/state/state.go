package state

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"marvel/catalog/internal/domain"

	"github.com/redis/go-redis/v9"
)

// NoPage is returned when no page has been recorded for a resource
const NoPage = -1

type StateManager interface {
	GetLastPage(ctx context.Context, path domain.ResourcePath) (int, error)
	SetLastPage(ctx context.Context, path domain.ResourcePath, page int) error
}

// RedisStore is the subset of *redis.Client the state manager needs
type RedisStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisStateManager struct {
	redisClient RedisStore
	keyPrefix   string
}

func NewRedisStateManager(redisClient RedisStore) StateManager {
	return &redisStateManager{
		redisClient: redisClient,
		keyPrefix:   "marvel:progress:page:",
	}
}

func (s *redisStateManager) GetLastPage(ctx context.Context, path domain.ResourcePath) (int, error) {
	key := s.keyPrefix + path.String()
	val, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NoPage, nil
		}
		return NoPage, fmt.Errorf("failed to get last page for %s: %w", path, err)
	}

	page, err := strconv.Atoi(val)
	if err != nil {
		return NoPage, fmt.Errorf("failed to parse page number for %s: %w", path, err)
	}

	return page, nil
}

func (s *redisStateManager) SetLastPage(ctx context.Context, path domain.ResourcePath, page int) error {
	key := s.keyPrefix + path.String()
	err := s.redisClient.Set(ctx, key, page, 0).Err() // No expiration
	if err != nil {
		return fmt.Errorf("failed to set last page for %s: %w", path, err)
	}
	return nil
}

type memoryStateManager struct {
	mu    sync.Mutex
	pages map[domain.ResourcePath]int
}

// NewMemoryStateManager keeps progress for the lifetime of the process only
func NewMemoryStateManager() StateManager {
	return &memoryStateManager{pages: make(map[domain.ResourcePath]int)}
}

func (s *memoryStateManager) GetLastPage(_ context.Context, path domain.ResourcePath) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.pages[path]
	if !ok {
		return NoPage, nil
	}
	return page, nil
}

func (s *memoryStateManager) SetLastPage(_ context.Context, path domain.ResourcePath, page int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages[path] = page
	return nil
}
